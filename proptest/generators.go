package proptest

// Charsets for string generation
const (
	CharsetAlpha      = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetAlphaLower = "abcdefghijklmnopqrstuvwxyz"
	CharsetDigits     = "0123456789"
	CharsetAlphaNum   = CharsetAlpha + CharsetDigits
	CharsetIdentStart = CharsetAlpha + "_"
	CharsetIdentBody  = CharsetAlphaNum + "_"
)

// StringFrom returns a random string of length [1, maxLen] drawn from
// charset.
func (g *Generator) StringFrom(charset string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = 1
	}
	return g.stringOfLen(charset, g.IntRange(1, maxLen))
}

func (g *Generator) stringOfLen(charset string, length int) string {
	if length == 0 {
		return ""
	}
	b := make([]byte, length)
	for i := range b {
		b[i] = charset[g.Intn(len(charset))]
	}
	return string(b)
}

// Identifier returns a random valid SQL identifier of length [1, maxLen]:
// a letter or underscore followed by letters, digits, or underscores.
func (g *Generator) Identifier(maxLen int) string {
	if maxLen <= 0 {
		maxLen = 1
	}
	length := g.IntRange(1, maxLen)

	b := make([]byte, length)
	// First character must be letter or underscore
	b[0] = CharsetIdentStart[g.Intn(len(CharsetIdentStart))]
	// Rest can be alphanumeric or underscore
	for i := 1; i < length; i++ {
		b[i] = CharsetIdentBody[g.Intn(len(CharsetIdentBody))]
	}
	return string(b)
}

// UniqueIdentifiers returns n distinct random identifiers, each of
// length at most maxLen. Collisions are resolved by retrying, so n
// should stay well below the identifier space for the given maxLen.
func (g *Generator) UniqueIdentifiers(n, maxLen int) []string {
	seen := make(map[string]bool, n)
	result := make([]string, 0, n)
	for len(result) < n {
		id := g.Identifier(maxLen)
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}
