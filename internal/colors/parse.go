package colors

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var decimalPattern = regexp.MustCompile(`^[-+]?(\d+(\.\d*)?|\.\d+)([eE][-+]?\d+)?$`)

// Parse decodes #RGB, #RRGGBB, #RRGGBBAA, rgb(), rgba(), hsl() and hsla()
// encodings. Any other input yields a *FormatError.
func Parse(text string) (Color, error) {
	s := strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(text, s[1:])
	case strings.HasPrefix(s, "rgba("):
		return parseFunc(text, s, "rgba(", fromRGBA)
	case strings.HasPrefix(s, "rgb("):
		return parseFunc(text, s, "rgb(", fromRGBA)
	case strings.HasPrefix(s, "hsla("):
		return parseFunc(text, s, "hsla(", fromHSLA)
	case strings.HasPrefix(s, "hsl("):
		return parseFunc(text, s, "hsl(", fromHSLA)
	}
	return Color{}, formatErr(text, "unknown encoding")
}

func parseHex(input, digits string) (Color, error) {
	var parts []string
	switch len(digits) {
	case 3:
		parts = []string{
			strings.Repeat(digits[0:1], 2),
			strings.Repeat(digits[1:2], 2),
			strings.Repeat(digits[2:3], 2),
		}
	case 6:
		parts = []string{digits[0:2], digits[2:4], digits[4:6]}
	case 8:
		parts = []string{digits[0:2], digits[2:4], digits[4:6], digits[6:8]}
	default:
		return Color{}, formatErr(input, "hex color must have 3, 6 or 8 digits")
	}
	vals := [4]float64{3: 1}
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 16, 8)
		if err != nil {
			return Color{}, formatErr(input, "invalid hex digit")
		}
		vals[i] = float64(v) / 255
	}
	return Color{R: vals[0], G: vals[1], B: vals[2], A: vals[3]}, nil
}

func parseFunc(input, s, prefix string, decode func(string, []string) (Color, error)) (Color, error) {
	if !strings.HasSuffix(s, ")") {
		return Color{}, formatErr(input, "missing closing parenthesis")
	}
	parts := splitArgs(s[len(prefix) : len(s)-1])
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, formatErr(input, "expected 3 or 4 channels")
	}
	return decode(input, parts)
}

// splitArgs accepts both the legacy comma syntax and the space syntax with an
// optional "/" before the alpha channel.
func splitArgs(body string) []string {
	parts := strings.Split(body, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) == 3 || len(parts) == 4 {
		return parts
	}
	parts = parts[:0]
	for _, f := range strings.Fields(strings.ReplaceAll(body, "/", " / ")) {
		if f != "/" {
			parts = append(parts, f)
		}
	}
	return parts
}

func fromRGBA(input string, parts []string) (Color, error) {
	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := parseChannel(parts[i], 255)
		if err != nil {
			return Color{}, formatErr(input, err.Error())
		}
		ch[i] = v / 255
	}
	a, err := parseAlpha(parts)
	if err != nil {
		return Color{}, formatErr(input, err.Error())
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: a}, nil
}

func fromHSLA(input string, parts []string) (Color, error) {
	h, err := parseAngle(parts[0])
	if err != nil {
		return Color{}, formatErr(input, err.Error())
	}
	s, err := parsePercent(parts[1])
	if err != nil {
		return Color{}, formatErr(input, err.Error())
	}
	l, err := parsePercent(parts[2])
	if err != nil {
		return Color{}, formatErr(input, err.Error())
	}
	a, err := parseAlpha(parts)
	if err != nil {
		return Color{}, formatErr(input, err.Error())
	}
	if s == 0 {
		return Color{R: l, G: l, B: l, A: a}, nil
	}
	rgb := colorful.Hsl(h, s, l)
	return Color{R: rgb.R, G: rgb.G, B: rgb.B, A: a}, nil
}

func parseAlpha(parts []string) (float64, error) {
	if len(parts) < 4 {
		return 1, nil
	}
	return parseChannel(parts[3], 1)
}

// parseChannel reads an absolute value in [0, max] or a percentage of max.
func parseChannel(tok string, max float64) (float64, error) {
	if strings.HasSuffix(tok, "%") {
		p, err := parsePercent(tok)
		if err != nil {
			return 0, err
		}
		return p * max, nil
	}
	v, err := strictFloat(tok)
	if err != nil {
		return 0, err
	}
	return clamp(v, 0, max), nil
}

// parsePercent converts "50%" into 0.5, clamped to [0, 1].
func parsePercent(tok string) (float64, error) {
	if !strings.HasSuffix(tok, "%") {
		return 0, &strconv.NumError{Func: "parsePercent", Num: tok, Err: strconv.ErrSyntax}
	}
	v, err := strictFloat(strings.TrimSuffix(tok, "%"))
	if err != nil {
		return 0, err
	}
	return clamp(v/100, 0, 1), nil
}

// parseAngle returns the hue in degrees normalized into [0, 360).
func parseAngle(tok string) (float64, error) {
	unit := 1.0
	switch {
	case strings.HasSuffix(tok, "deg"):
		tok = strings.TrimSuffix(tok, "deg")
	case strings.HasSuffix(tok, "rad"):
		tok = strings.TrimSuffix(tok, "rad")
		unit = 180 / math.Pi
	case strings.HasSuffix(tok, "turn"):
		tok = strings.TrimSuffix(tok, "turn")
		unit = 360
	}
	v, err := strictFloat(tok)
	if err != nil {
		return 0, err
	}
	deg := math.Mod(math.Mod(v*unit, 360)+360, 360)
	return deg, nil
}

func strictFloat(tok string) (float64, error) {
	tok = strings.TrimSpace(tok)
	if !decimalPattern.MatchString(tok) {
		return 0, &strconv.NumError{Func: "strictFloat", Num: tok, Err: strconv.ErrSyntax}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, &strconv.NumError{Func: "strictFloat", Num: tok, Err: strconv.ErrRange}
	}
	return v, nil
}
