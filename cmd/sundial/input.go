package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/chrissnell/sundial/pkg/config"
)

const coordinatePrompt = "Enter latitude and longitude for desired sundial location (decimal format): "

// ParseCoordinates reads "lat, lon" or "lat lon".
func ParseCoordinates(s string) (lat, lon float64, err error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected latitude and longitude, got %q", strings.TrimSpace(s))
	}
	if lat, err = strconv.ParseFloat(fields[0], 64); err != nil {
		return 0, 0, fmt.Errorf("latitude %q is not a decimal number", fields[0])
	}
	if lon, err = strconv.ParseFloat(fields[1], 64); err != nil {
		return 0, 0, fmt.Errorf("longitude %q is not a decimal number", fields[1])
	}
	return lat, lon, nil
}

// promptCoordinates writes the prompt to w and parses one line from r.
func promptCoordinates(r io.Reader, w io.Writer) (lat, lon float64, err error) {
	fmt.Fprint(w, coordinatePrompt)

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return 0, 0, fmt.Errorf("read coordinates: %w", err)
	}
	return ParseCoordinates(line)
}

// resolveUTCOffset returns the -utc-offset flag when set, otherwise the
// configured timezone.utc_offset (SUNDIAL_UTC_OFFSET included), otherwise nil.
func resolveUTCOffset(flagValue string, provider config.ConfigProvider) (*float64, error) {
	if off, err := optionalFloat("utc-offset", flagValue); err != nil || off != nil {
		return off, err
	}
	cfg, err := provider.LoadConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Timezone.UTCOffset, nil
}

// optionalFloat parses a flag value, returning nil when it was not set.
func optionalFloat(name, v string) (*float64, error) {
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("-%s: %q is not a decimal number", name, v)
	}
	return &f, nil
}
