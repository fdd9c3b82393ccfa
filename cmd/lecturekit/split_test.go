package main_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/lecturekit"
	"github.com/fwojciec/lecturekit/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nodePage = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
    <meta charset="UTF-8">
    <title>认识节点并做一个简单的工作流</title>
    <style>
        .node { border: 1px solid #ccc; }
        .edge { stroke: #999; }
    </style>
</head>
<body>
    <div class="node">Trigger</div>
    <script>
        const nodes = document.querySelectorAll('.node');
        nodes.forEach(n => n.classList.add('ready'));
    </script>
</body>
</html>
`

// newLessonDir returns a directory holding index.html with content and
// empty css/ and js/ subdirectories.
func newLessonDir(t *testing.T, content string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "css"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "js"), 0755))
	page := filepath.Join(dir, "index.html")
	writeFile(t, page, content)
	return dir, page
}

// Story: Splitting a Single-File Page
//
// The splitter finds the inline stylesheet and closing script, writes them
// to css/styles.css and js/main.js, and rewrites the page in place.

func TestSplit_FindsBlocksByMarkers(t *testing.T) {
	t.Parallel()

	// Given: a lesson directory with a single-file page
	dir, page := newLessonDir(t, nodePage)

	// When: splitting it
	stdout, _, err := run(t, "split", page)

	// Then: the stylesheet holds exactly the CSS lines
	require.NoError(t, err)
	assert.Equal(t, "        .node { border: 1px solid #ccc; }\n        .edge { stroke: #999; }\n",
		readFile(t, filepath.Join(dir, "css", "styles.css")))

	// And: the script holds exactly the JS lines
	assert.Equal(t, "        const nodes = document.querySelectorAll('.node');\n        nodes.forEach(n => n.classList.add('ready'));\n",
		readFile(t, filepath.Join(dir, "js", "main.js")))

	// And: the page references both files
	html := readFile(t, page)
	assert.Equal(t, `<!DOCTYPE html>
<html lang="zh-CN">
<head>
    <meta charset="UTF-8">
    <title>认识节点并做一个简单的工作流</title>
    <link rel="stylesheet" href="css/styles.css">
</head>
<body>
    <div class="node">Trigger</div>
    <script src="js/main.js"></script>
</body>
</html>
`, html)

	// And: line counts are reported
	assert.Contains(t, stdout, "18 lines")
	assert.Contains(t, stdout, "CSS: lines 6:8 (2 lines, ")
	assert.Contains(t, stdout, "JavaScript: lines 13:15 (2 lines, ")
	assert.Contains(t, stdout, "HTML: 12 lines, ")
}

func TestSplit_MissingOutputDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	page := filepath.Join(dir, "index.html")
	writeFile(t, page, nodePage)

	_, _, err := run(t, "split", page)

	assert.Equal(t, lecturekit.ENOTFOUND, lecturekit.ErrorCode(err))
	assert.Equal(t, nodePage, readFile(t, page), "page must not be rewritten")
}

func TestSplit_CreateDirsAndBackup(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	page := filepath.Join(dir, "index.html")
	writeFile(t, page, nodePage)

	_, _, err := run(t, "split", "--create-dirs", "--backup", page)

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "css", "styles.css"))
	assert.FileExists(t, filepath.Join(dir, "js", "main.js"))
	assert.Equal(t, nodePage, readFile(t, page+fs.BackupSuffix))
}

func TestSplit_ReportsMissingMarkers(t *testing.T) {
	t.Parallel()

	_, page := newLessonDir(t, strings.NewReplacer("<style>", "", "</style>", "").Replace(nodePage))

	_, _, err := run(t, "split", page)

	assert.Equal(t, lecturekit.ENOMATCH, lecturekit.ErrorCode(err))
}

func TestSplit_ExplicitRanges(t *testing.T) {
	t.Parallel()

	dir, page := newLessonDir(t, nodePage)

	_, _, err := run(t, "split", page,
		"--head", "0:5", "--css", "6:8", "--body", "10:12", "--js", "13:15", "--tail", "16:18")

	require.NoError(t, err)
	assert.Contains(t, readFile(t, filepath.Join(dir, "css", "styles.css")), ".edge")
	assert.Contains(t, readFile(t, page), `<script src="js/main.js"></script>`)
}

func TestSplit_ExplicitRangesMustBeComplete(t *testing.T) {
	t.Parallel()

	_, page := newLessonDir(t, nodePage)

	_, _, err := run(t, "split", page, "--css", "6:8")

	require.Error(t, err)
	assert.Equal(t, lecturekit.EINVALID, lecturekit.ErrorCode(err))
	assert.Contains(t, lecturekit.ErrorMessage(err), "--head")
}

func TestSplit_LegacyCannotBeCombinedWithRanges(t *testing.T) {
	t.Parallel()

	_, page := newLessonDir(t, nodePage)

	_, _, err := run(t, "split", page, "--legacy", "--css", "6:8")

	assert.Equal(t, lecturekit.EINVALID, lecturekit.ErrorCode(err))
}

func TestSplit_LegacyRanges(t *testing.T) {
	t.Parallel()

	// Given: a page with the line count of the original node workflow lecture
	var b strings.Builder
	for i := range 3235 {
		fmt.Fprintf(&b, "line %d\n", i)
	}
	source := b.String()
	dir, page := newLessonDir(t, source)

	// When: splitting with the legacy ranges
	_, _, err := run(t, "split", "--legacy", page)

	// Then: the stylesheet is lines [11, 1350) of the source
	require.NoError(t, err)
	lines := lecturekit.SplitLines(source)
	css := readFile(t, filepath.Join(dir, "css", "styles.css"))
	assert.Equal(t, lines[11:1350].Join(), css)
	assert.Len(t, lecturekit.SplitLines(css), 1339)

	// And: the page has head + 2 + body + 1 + tail lines
	assert.Len(t, lecturekit.SplitLines(readFile(t, page)), 8+1+1+965+1+2)
}
