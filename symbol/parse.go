package symbol

import "fmt"

// stemIndex and branchIndex invert the canonical rune spellings.
// Built once at package init; read-only afterwards.
var (
	stemIndex   = make(map[rune]Stem, NumStems)
	branchIndex = make(map[rune]Branch, NumBranches)
)

func init() {
	for i, r := range stemRunes {
		stemIndex[r] = Stem(i)
	}
	for i, r := range branchRunes {
		branchIndex[r] = Branch(i)
	}
}

// ParseStem resolves a single rune against the stem alphabet.
func ParseStem(r rune) (Stem, error) {
	s, ok := stemIndex[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownStem, string(r))
	}

	return s, nil
}

// ParseBranch resolves a single rune against the branch alphabet.
func ParseBranch(r rune) (Branch, error) {
	b, ok := branchIndex[r]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownBranch, string(r))
	}

	return b, nil
}

// ParsePillar decodes a 2-rune pillar code such as "甲子".
func ParsePillar(code string) (Pillar, error) {
	runes := []rune(code)
	if len(runes) != 2 {
		return Pillar{}, fmt.Errorf("%w: %q", ErrBadPillar, code)
	}
	s, err := ParseStem(runes[0])
	if err != nil {
		return Pillar{}, fmt.Errorf("%w in pillar %q", err, code)
	}
	b, err := ParseBranch(runes[1])
	if err != nil {
		return Pillar{}, fmt.Errorf("%w in pillar %q", err, code)
	}

	return Pillar{Stem: s, Branch: b}, nil
}

// ParseChart decodes a sequence of 2-rune pillar codes into a validated
// Chart, e.g. ParseChart([]string{"甲子", "丙寅", "庚辰", "壬午"}).
func ParseChart(codes []string) (Chart, error) {
	pillars := make([]Pillar, 0, len(codes))
	for _, code := range codes {
		p, err := ParsePillar(code)
		if err != nil {
			return Chart{}, err
		}
		pillars = append(pillars, p)
	}

	return NewChart(pillars)
}

// MustParseChart is ParseChart that panics on error; intended for tests
// and examples with literal chart codes.
func MustParseChart(codes []string) Chart {
	c, err := ParseChart(codes)
	if err != nil {
		panic(err)
	}

	return c
}
