package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/rogerio-castellano/electronics-catalog-proxy/internal/models"
)

// QueryParams holds the raw query string values of a request.
// An empty string means the parameter was not given.
type QueryParams struct {
	ReleaseDateStart string
	ReleaseDateEnd   string
	Brands           string
	PageSize         string
	PageNumber       string
}

// Filter is the validated form of QueryParams for a given StageSet.
// Nil pointers and an empty Brands list mean no constraint.
type Filter struct {
	Stages      StageSet
	ReleaseFrom *string
	ReleaseTo   *string
	Brands      []string
	Offset      *int
	Limit       *int
}

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Parse validates the params needed by stages. It never looks at records,
// so a bad request is rejected before the upstream is contacted.
func Parse(p QueryParams, stages StageSet) (Filter, error) {
	f := Filter{Stages: stages}

	if stages.Has(DateRange) {
		if p.ReleaseDateStart != "" {
			if !validDate(p.ReleaseDateStart) {
				return Filter{}, invalidDateFormat("release_date_start")
			}
			from := p.ReleaseDateStart
			f.ReleaseFrom = &from
		}
		if p.ReleaseDateEnd != "" {
			if !validDate(p.ReleaseDateEnd) {
				return Filter{}, invalidDateFormat("release_date_end")
			}
			to := p.ReleaseDateEnd
			f.ReleaseTo = &to
		}
	}

	if stages.Has(Pagination) {
		size, ok := parsePositiveInt(p.PageSize)
		if !ok {
			return Filter{}, invalidPagination("page_size")
		}
		number, ok := parsePositiveInt(p.PageNumber)
		if !ok {
			return Filter{}, invalidPagination("page_number")
		}
		offset := pageOffset(number, size)
		f.Offset = &offset
		f.Limit = &size
	}

	if stages.Has(Brand) {
		f.Brands = ParseBrands(p.Brands)
	}

	return f, nil
}

// ParseBrands splits a comma-separated brand list, trimming each entry and
// dropping empty ones.
func ParseBrands(s string) []string {
	var brands []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brands = append(brands, b)
		}
	}
	return brands
}

func validDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// parsePositiveInt reads the leading integer of s the way a lenient form
// parser does: leading space and an optional sign are accepted and anything
// after the digits is ignored, so "1.5" is 1 and "10abc" is 10. Values past
// the int range saturate to math.MaxInt.
func parsePositiveInt(s string) (int, bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 || negative {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		// only a range error is possible on a run of digits
		n = math.MaxInt
	}
	if n <= 0 {
		return 0, false
	}
	return n, true
}

// pageOffset returns (number-1)*size, saturating instead of overflowing.
func pageOffset(number, size int) int {
	if number-1 > math.MaxInt/size {
		return math.MaxInt
	}
	return (number - 1) * size
}

func (f Filter) matches(u models.UpstreamRecord) bool {
	if !complete(u) {
		return false
	}

	if f.ReleaseFrom != nil || f.ReleaseTo != nil {
		if date, ok := comparableDate(u.ReleaseDate); ok {
			if f.ReleaseFrom != nil && date < *f.ReleaseFrom {
				return false
			}
			if f.ReleaseTo != nil && date > *f.ReleaseTo {
				return false
			}
		}
	}

	if len(f.Brands) > 0 {
		brand, ok := u.BrandName.(string)
		if !ok || !slices.Contains(f.Brands, brand) {
			return false
		}
	}

	return true
}

// complete is the completeness gate: every field must be truthy.
func complete(u models.UpstreamRecord) bool {
	for _, v := range u.Fields() {
		if !truthy(v) {
			return false
		}
	}
	return true
}

// comparableDate returns the string a release date is compared as against a
// date bound. Numbers and booleans compare numerically with a date string,
// which is never ordered, so they are reported as not comparable and pass
// both bounds. Objects and arrays compare by their primitive string form.
func comparableDate(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		return x, true
	case map[string]any, []any:
		return primitiveString(x), true
	default:
		return "", false
	}
}

func primitiveString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return numberString(x)
	case map[string]any:
		return "[object Object]"
	case []any:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = primitiveString(e)
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(x)
	}
}

// numberString prints n in shortest round-trip form, so 1.50 prints as 1.5.
func numberString(n json.Number) string {
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	if abs := math.Abs(f); abs >= 1e21 || (abs != 0 && abs < 1e-6) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
