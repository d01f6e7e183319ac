package cache_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"zx/internal/ast"
	"zx/internal/cache"
	"zx/internal/lexer"
	"zx/internal/parser"
)

// parseTree builds a real tree for serialization tests.
func parseTree(t *testing.T, src string) *ast.Tree {
	t.Helper()
	tokens, lexFailed := lexer.New(src).Lex()
	if lexFailed {
		t.Fatal("unexpected lex errors")
	}
	tree, parseFailed := parser.Parse(tokens)
	if parseFailed {
		t.Fatal("unexpected parse errors")
	}
	return tree
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDigest_Format(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.zx", "fn main() {}")
	digest, err := cache.Digest(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(digest) != 32 {
		t.Errorf("digest length = %d, want 32 hex chars", len(digest))
	}
	if strings.ToLower(digest) != digest {
		t.Errorf("digest %q must be lowercase hex", digest)
	}
	for _, c := range digest {
		if !strings.ContainsRune("0123456789abcdef", c) {
			t.Fatalf("digest %q contains non-hex rune %q", digest, c)
		}
	}
}

// Identity is by content: the same bytes under different paths share a
// digest, one changed byte moves to a different slot.
func TestDigest_ContentAddressed(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.zx", "fn main() {}")
	b := writeFile(t, dir, "b.zx", "fn main() {}")
	c := writeFile(t, dir, "c.zx", "fn main() { }")

	da, err := cache.Digest(a)
	if err != nil {
		t.Fatal(err)
	}
	db, err := cache.Digest(b)
	if err != nil {
		t.Fatal(err)
	}
	dc, err := cache.Digest(c)
	if err != nil {
		t.Fatal(err)
	}
	if da != db {
		t.Errorf("same content, different digests: %s vs %s", da, db)
	}
	if da == dc {
		t.Errorf("different content, same digest: %s", da)
	}
}

// Chunked reading must produce the same digest regardless of where the
// chunk boundaries fall.
func TestDigest_LargeInput(t *testing.T) {
	dir := t.TempDir()
	big := strings.Repeat("fn f() {}\n", 3000) // well past one 8 KiB chunk
	a := writeFile(t, dir, "big.zx", big)

	digest, err := cache.Digest(a)
	if err != nil {
		t.Fatal(err)
	}
	again, err := cache.Digest(a)
	if err != nil {
		t.Fatal(err)
	}
	if digest != again {
		t.Errorf("digest not deterministic: %s vs %s", digest, again)
	}
}

func TestDigest_MissingFile(t *testing.T) {
	if _, err := cache.Digest(filepath.Join(t.TempDir(), "absent.zx")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestPathFor(t *testing.T) {
	got := cache.PathFor("/var/c", "deadbeef")
	want := filepath.Join("/var/c", "deadbeef"+cache.Ext)
	if got != want {
		t.Errorf("PathFor = %q, want %q", got, want)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	tree := parseTree(t, `
struct Point { u32 x; u32 y; };
enum Dir { North, South(u32) };
intf Show { fn show() -> u32; };
fn main() {
	u32 total = 0;
	loop {
		total = total + 1;
		if total >= 10 { break; }
	}
	match total {
		1, 2 { g(total); }
		default { ret; }
	}
}
`)
	dir := t.TempDir()
	path := cache.PathFor(dir, "0123456789abcdef0123456789abcdef")

	if err := cache.Save(path, tree); err != nil {
		t.Fatal(err)
	}
	loaded, err := cache.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tree, loaded) {
		t.Error("loaded tree differs from the saved one")
	}
}

func TestSave_CreatesDirAndLeavesNoTemp(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	path := cache.PathFor(dir, "feedface00000000feedface00000000")

	if err := cache.Save(path, parseTree(t, "fn main() {}")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly the cache entry, got %d files", len(entries))
	}
	if !strings.HasSuffix(entries[0].Name(), cache.Ext) {
		t.Errorf("leftover file %q in cache dir", entries[0].Name())
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	digest := "00000000000000000000000000000001"
	if cache.Exists(dir, digest) {
		t.Error("entry must not exist before Save")
	}
	if err := cache.Save(cache.PathFor(dir, digest), parseTree(t, "fn main() {}")); err != nil {
		t.Fatal(err)
	}
	if !cache.Exists(dir, digest) {
		t.Error("entry must exist after Save")
	}
}

func TestLoad_SchemaMismatch(t *testing.T) {
	dir := t.TempDir()
	path := cache.PathFor(dir, "00000000000000000000000000000002")

	// A payload tagged with a future schema version.
	stale := struct {
		Schema uint16
		Tree   *ast.Tree
	}{Schema: 99, Tree: &ast.Tree{}}
	raw, err := msgpack.Marshal(&stale)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err = cache.Load(path)
	if !errors.Is(err, cache.ErrSchemaMismatch) {
		t.Errorf("Load = %v, want ErrSchemaMismatch", err)
	}
}

func TestLoad_MissingEntry(t *testing.T) {
	if _, err := cache.Load(cache.PathFor(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for a missing entry")
	}
}

func TestLoad_CorruptEntry(t *testing.T) {
	dir := t.TempDir()
	path := cache.PathFor(dir, "00000000000000000000000000000003")
	if err := os.WriteFile(path, []byte("not msgpack at all"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := cache.Load(path); err == nil {
		t.Error("expected error for a corrupt entry")
	}
}
