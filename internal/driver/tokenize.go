package driver

import (
	"fmt"
	"os"

	"zx/internal/lexer"
	"zx/internal/token"
)

// Tokenize lexes one file without touching the cache. Used by the CLI
// token dump and by the parse command.
func Tokenize(path string) ([]token.Token, bool, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", path, err)
	}
	tokens, hasErr := lexer.New(string(src)).Lex()
	return tokens, hasErr, nil
}
