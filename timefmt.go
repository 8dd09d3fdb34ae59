package chartgeom

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const DefaultTimeFormat = "%Y-%m-%d"

// TimeParser translates a strftime like format into a parsing function.
func TimeParser(format string) (func(string) (time.Time, error), error) {
	layout, err := parseFormat(format)
	if err != nil {
		return nil, err
	}
	return func(str string) (time.Time, error) {
		return time.Parse(layout, str)
	}, nil
}

const percent = '%'

var specifiers = map[rune]string{
	'D': "01/02/06",
	'Y': "2006",
	'y': "06",
	'm': "01",
	'B': "January",
	'b': "Jan",
	'h': "Jan",
	'd': "02",
	'e': "_2",
	'j': "002",
	'A': "Monday",
	'a': "Mon",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'T': "15:04:05",
	'F': "2006-01-02",
	'z': "-07:00",
	'Z': "MST",
	'c': "Mon Jan 2 15:04:05 2006",
	'r': "03:04:05 PM",
	'R': "15:04",
	'%': "%",
	'n': "\n",
	't': "\t",
}

func parseFormat(str string) (string, error) {
	var (
		r = strings.NewReader(str)
		w strings.Builder
	)
	for r.Len() > 0 {
		x, _, _ := r.ReadRune()
		if x == utf8.RuneError {
			return "", fmt.Errorf("invalid character found in format string")
		}
		if x != percent {
			w.WriteRune(x)
			continue
		}
		x, _, err := r.ReadRune()
		if err != nil {
			return "", fmt.Errorf("format string ends with a lone %c", percent)
		}
		spec, ok := specifiers[x]
		if !ok {
			return "", fmt.Errorf("invalid specifier found %c", x)
		}
		w.WriteString(spec)
	}
	return w.String(), nil
}
