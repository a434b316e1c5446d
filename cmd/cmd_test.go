package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func testDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "vetcards.db")
}

func TestListSeedDeck(t *testing.T) {
	db := testDB(t)

	out, err := execute(t, "list", "--db", db, "--by", "disease")
	require.NoError(t, err)
	assert.Contains(t, out, "Pnuemonic manheimiosis")
	assert.Contains(t, out, "3 diseases")

	out, err = execute(t, "list", "--db", db, "--by", "symptom")
	require.NoError(t, err)
	assert.Contains(t, out, "13 symptoms")
}

func TestListRejectsUnknownIndex(t *testing.T) {
	_, err := execute(t, "list", "--db", testDB(t), "--by", "pathogen")
	assert.ErrorContains(t, err, "unknown --by value")
}

func TestAddRemoveRoundTrip(t *testing.T) {
	db := testDB(t)

	out, err := execute(t, "add", "--db", db, " Anthrax ", "sudden death, bleeding")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved Anthrax")

	out, err = execute(t, "list", "--db", db, "--by", "disease")
	require.NoError(t, err)
	assert.Contains(t, out, "sudden death, bleeding")
	assert.Contains(t, out, "4 diseases")

	out, err = execute(t, "remove", "--db", db, "Anthrax")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed Anthrax")

	out, err = execute(t, "remove", "--db", db, "Anthrax")
	require.NoError(t, err)
	assert.Contains(t, out, "not in the deck")
}

func TestAddRejectsBlankInput(t *testing.T) {
	_, err := execute(t, "add", "--db", testDB(t), "Anthrax", " , ")
	assert.ErrorContains(t, err, "at least one symptom")
}

func TestDrawSeededIsDeterministic(t *testing.T) {
	db := testDB(t)

	first, err := execute(t, "draw", "--db", db, "--seed", "42", "--reveal=true")
	require.NoError(t, err)
	second, err := execute(t, "draw", "--db", db, "--seed", "42", "--reveal=true")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "•")

	out, err := execute(t, "stats", "--db", db, "--top", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Sessions:  2")
	assert.Contains(t, out, "Draws:     2")
	assert.Contains(t, out, "Reveals:   2")
}

func TestExportImport(t *testing.T) {
	db := testDB(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "deck.yaml")

	_, err := execute(t, "export", "--db", db, "--format", "", "-o", out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Hemorrhagic septicemia:")

	extra := filepath.Join(dir, "extra.json")
	require.NoError(t, os.WriteFile(extra, []byte(`{"Anthrax":["sudden death"]}`), 0o644))

	other := testDB(t)
	msg, err := execute(t, "import", "--db", other, "--replace=true", filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	assert.Contains(t, msg, "deck has 1 diseases")

	msg, err = execute(t, "import", "--db", other, "--replace=false", filepath.Join(dir, "*.yaml"))
	require.NoError(t, err)
	assert.Contains(t, msg, "deck has 4 diseases")
}

func TestImportNoMatches(t *testing.T) {
	_, err := execute(t, "import", "--db", testDB(t), "--replace=false", filepath.Join(t.TempDir(), "*.json"))
	assert.ErrorContains(t, err, "no deck files matched")
}

func TestReset(t *testing.T) {
	db := testDB(t)
	_, err := execute(t, "remove", "--db", db, "Hemorrhagic septicemia")
	require.NoError(t, err)

	out, err := execute(t, "reset", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "3 sample diseases")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "vetcards "), out)
}
