package price

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"silver-advisor/internal/api"
	"silver-advisor/internal/logger"
)

var (
	ErrSchemeNotFound  = errors.New("scheme not found in NAV file")
	ErrNAVUnavailable  = errors.New("NAV not available for scheme")
	errMalformedNAVRow = errors.New("malformed NAV row")
)

// AMFI NAVAll.txt columns
const (
	amfiColSchemeCode = 0
	amfiColSchemeName = 3
	amfiColNAV        = 4
	amfiColDate       = 5
	amfiColumns       = 6
)

// NAVRecord is one scheme row of the AMFI NAV file
type NAVRecord struct {
	SchemeCode string
	SchemeName string
	NAV        float64
	Date       string
}

// AMFI reads the daily NAV file published by AMFI. The file changes once a
// day, so parsed NAVs are kept for ttl.
type AMFI struct {
	client     *api.Client
	url        string
	schemeCode string
	cache      *gocache.Cache
}

var _ NAVSource = (*AMFI)(nil)

func NewAMFI(client *api.Client, url, schemeCode string, ttl time.Duration) *AMFI {
	return &AMFI{
		client:     client,
		url:        url,
		schemeCode: strings.TrimSpace(schemeCode),
		cache:      gocache.New(ttl, 2*ttl+time.Minute),
	}
}

func (a *AMFI) NAV(ctx context.Context) (float64, error) {
	if v, ok := a.cache.Get(a.schemeCode); ok {
		return v.(float64), nil
	}

	resp, err := a.client.GET(ctx, a.url)
	if err != nil {
		return 0, fmt.Errorf("fetch NAV file: %w", err)
	}

	rec, err := FindNAV(resp.Body, a.schemeCode)
	if err != nil {
		return 0, err
	}
	logger.Debug(ctx, "NAV resolved", "scheme_code", rec.SchemeCode, "scheme", rec.SchemeName, "nav", rec.NAV, "date", rec.Date)

	a.cache.Set(a.schemeCode, rec.NAV, gocache.DefaultExpiration)
	return rec.NAV, nil
}

// FindNAV scans a NAVAll.txt body for the scheme code. Header, section and
// blank lines are ignored.
func FindNAV(body []byte, schemeCode string) (NAVRecord, error) {
	sc := bufio.NewScanner(bytes.NewReader(body))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, schemeCode+";") {
			continue
		}
		return parseNAVRow(line)
	}
	if err := sc.Err(); err != nil {
		return NAVRecord{}, fmt.Errorf("read NAV file: %w", err)
	}
	return NAVRecord{}, fmt.Errorf("%w: %s", ErrSchemeNotFound, schemeCode)
}

func parseNAVRow(line string) (NAVRecord, error) {
	cols := strings.Split(line, ";")
	if len(cols) < amfiColumns {
		return NAVRecord{}, fmt.Errorf("%w: %q", errMalformedNAVRow, line)
	}

	rec := NAVRecord{
		SchemeCode: strings.TrimSpace(cols[amfiColSchemeCode]),
		SchemeName: strings.TrimSpace(cols[amfiColSchemeName]),
		Date:       strings.TrimSpace(cols[amfiColDate]),
	}

	nav, err := strconv.ParseFloat(strings.TrimSpace(cols[amfiColNAV]), 64)
	if err != nil || nav <= 0 {
		return NAVRecord{}, fmt.Errorf("%w: %s (%q)", ErrNAVUnavailable, rec.SchemeCode, cols[amfiColNAV])
	}
	rec.NAV = nav
	return rec, nil
}
