package siteconfig

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
)

var httpHeaderKeyPattern = regexp.MustCompile(`^http_header\(([^)]+)\)$`)

// ParseFile reads path as an FTR directive file and returns the resulting
// Bundle. A malformed line fails the whole file, per §4.8.
func ParseFile(path string) (Bundle, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bundle{}, &SiteConfigError{Message: err.Error(), Cause: ErrCauseMalformedValue, Line: 0}
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads an FTR directive file from r line by line.
func Parse(r io.Reader) (Bundle, error) {
	bundle := NewBundle()
	scanner := bufio.NewScanner(r)

	var pendingFind *string

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, err := splitDirective(line, lineNo)
		if err != nil {
			return Bundle{}, err
		}

		if err := applyDirective(&bundle, key, value, lineNo, &pendingFind); err != nil {
			return Bundle{}, err
		}
	}
	if err := scanner.Err(); err != nil {
		return Bundle{}, &SiteConfigError{Message: err.Error(), Cause: ErrCauseMalformedValue, Line: lineNo}
	}

	return bundle, nil
}

func splitDirective(line string, lineNo int) (key, value string, err error) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return "", "", &SiteConfigError{
			Message: fmt.Sprintf("directive %q has no ':'", line),
			Cause:   ErrCauseMalformedValue,
			Line:    lineNo,
		}
	}
	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), nil
}

func applyDirective(b *Bundle, key, value string, lineNo int, pendingFind **string) error {
	if m := httpHeaderKeyPattern.FindStringSubmatch(key); m != nil {
		b.HTTPHeaders[m[1]] = value
		return nil
	}

	switch key {
	case "title":
		b.TitleXPath = append(b.TitleXPath, value)
	case "body":
		b.BodyXPath = append(b.BodyXPath, value)
	case "date":
		b.DateXPath = append(b.DateXPath, value)
	case "author":
		b.AuthorXPath = append(b.AuthorXPath, value)
	case "strip":
		b.Strip = append(b.Strip, value)
	case "strip_id_or_class":
		b.StripIDOrClass = append(b.StripIDOrClass, value)
	case "strip_image_src":
		b.StripImageSrc = append(b.StripImageSrc, value)
	case "strip_attr":
		b.StripAttr = append(b.StripAttr, value)
	case "tidy":
		v, err := parseBool(value, lineNo)
		if err != nil {
			return err
		}
		b.Tidy = &v
	case "prune":
		v, err := parseBool(value, lineNo)
		if err != nil {
			return err
		}
		b.Prune = &v
	case "autodetect_on_failure":
		v, err := parseBool(value, lineNo)
		if err != nil {
			return err
		}
		b.AutodetectOnFailure = &v
	case "single_page_link":
		b.SinglePageLinkXPath = append(b.SinglePageLinkXPath, value)
	case "next_page_link":
		b.NextPageLinkXPath = append(b.NextPageLinkXPath, value)
	case "find_string":
		v := value
		*pendingFind = &v
	case "replace_string":
		if *pendingFind == nil {
			return nil // unpaired replace, tolerated
		}
		b.FindReplace = append(b.FindReplace, FindReplace{Find: **pendingFind, Replace: value})
		*pendingFind = nil
	case "test_url":
		b.TestURLs = append(b.TestURLs, value)
	case "fingerprint":
		fp, err := parseFingerprint(value, lineNo)
		if err != nil {
			return err
		}
		b.Fingerprints = append(b.Fingerprints, fp)
	default:
		return &SiteConfigError{
			Message: fmt.Sprintf("unknown directive key %q", key),
			Cause:   ErrCauseUnknownKey,
			Line:    lineNo,
		}
	}
	return nil
}

func parseBool(value string, lineNo int) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, &SiteConfigError{
			Message: fmt.Sprintf("invalid boolean value %q", value),
			Cause:   ErrCauseMalformedValue,
			Line:    lineNo,
		}
	}
}

func parseFingerprint(value string, lineNo int) (Fingerprint, error) {
	parts := strings.SplitN(value, "|", 2)
	if len(parts) != 2 {
		return Fingerprint{}, &SiteConfigError{
			Message: fmt.Sprintf("fingerprint %q missing '|' separator", value),
			Cause:   ErrCauseMalformedValue,
			Line:    lineNo,
		}
	}
	return Fingerprint{
		Fragment: strings.TrimSpace(parts[0]),
		Hostname: strings.TrimSpace(parts[1]),
	}, nil
}
