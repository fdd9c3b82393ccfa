package html_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/lecturekit"
	"github.com/fwojciec/lecturekit/html"
	"github.com/fwojciec/lecturekit/split"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lesson = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
    <meta charset="UTF-8">
    <title>认识节点</title>
    <script src="https://cdn.example.com/vendor.js"></script>
    <style>
        @import url('https://fonts.example.com/inter.css');
        body { margin: 0; }
        .node { border: 1px solid #ccc; }
    </style>

</head>
<body>
    <div class="node">Trigger</div>
    <script>
        let a = 1;
    </script>
    <div class="node">Action</div>
    <script>
        document.querySelectorAll('.node').forEach(n => n.classList.add('ready'));
        console.log("</head>");
    </script>
</body>
</html>
`

func locate(t *testing.T, page string) (*lecturekit.SplitPlan, error) {
	t.Helper()
	return html.NewLocator("css/styles.css", "js/main.js").Locate(lecturekit.SplitLines(page))
}

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	t.Run("finds style and closing script ranges", func(t *testing.T) {
		t.Parallel()

		plan, err := locate(t, lesson)

		require.NoError(t, err)
		assert.Equal(t, lecturekit.LineRange{Start: 0, End: 6}, plan.Head)
		assert.Equal(t, lecturekit.LineRange{Start: 7, End: 10}, plan.CSS)
		assert.Equal(t, lecturekit.LineRange{Start: 13, End: 19}, plan.Body)
		assert.Equal(t, lecturekit.LineRange{Start: 20, End: 22}, plan.JS)
		assert.Equal(t, lecturekit.LineRange{Start: 23, End: 25}, plan.Tail)
		assert.Equal(t, "css/styles.css", plan.StylesheetHref)
		assert.Equal(t, "js/main.js", plan.ScriptSrc)
	})

	t.Run("plan splits the page into clean parts", func(t *testing.T) {
		t.Parallel()

		plan, err := locate(t, lesson)
		require.NoError(t, err)

		result, err := split.Split(lecturekit.SplitLines(lesson), plan)

		require.NoError(t, err)
		assert.NotContains(t, result.CSS, "<style>")
		assert.True(t, strings.HasPrefix(result.CSS, "        @import"))
		assert.NotContains(t, result.JS, "<script>")
		assert.Contains(t, result.JS, "querySelectorAll")
		assert.NotContains(t, result.HTML, "<style>")
		assert.NotContains(t, result.HTML, "querySelectorAll")
		assert.Contains(t, result.HTML, "let a = 1;")
		assert.Contains(t, result.HTML, "<script src=\"js/main.js\"></script>\n</body>\n</html>\n")
	})

	t.Run("reports missing style block", func(t *testing.T) {
		t.Parallel()

		page := strings.NewReplacer("<style>", "", "</style>", "").Replace(lesson)

		_, err := locate(t, page)

		assert.Equal(t, lecturekit.ENOMATCH, lecturekit.ErrorCode(err))
	})

	t.Run("reports missing closing script", func(t *testing.T) {
		t.Parallel()

		page := strings.Replace(lesson, "    </script>\n</body>", "    </script>\n    <footer></footer>\n</body>", 1)

		_, err := locate(t, page)

		assert.Equal(t, lecturekit.ENOMATCH, lecturekit.ErrorCode(err))
	})

	t.Run("ignores script with src before body close", func(t *testing.T) {
		t.Parallel()

		page := strings.Replace(lesson, "</body>", "<script src=\"extra.js\"></script>\n</body>", 1)

		_, err := locate(t, page)

		assert.Equal(t, lecturekit.ENOMATCH, lecturekit.ErrorCode(err))
	})

	t.Run("rejects style tag sharing a line", func(t *testing.T) {
		t.Parallel()

		page := strings.Replace(lesson, "    <style>\n", "    <style>body { color: red; }\n", 1)

		_, err := locate(t, page)

		require.Error(t, err)
		assert.Equal(t, lecturekit.EINVALID, lecturekit.ErrorCode(err))
		assert.Contains(t, lecturekit.ErrorMessage(err), "own line")
	})

	t.Run("rejects head content after the style block", func(t *testing.T) {
		t.Parallel()

		page := strings.Replace(lesson, "    </style>\n\n", "    </style>\n    <link rel=\"icon\" href=\"favicon.ico\">\n", 1)

		_, err := locate(t, page)

		require.Error(t, err)
		assert.Equal(t, lecturekit.EINVALID, lecturekit.ErrorCode(err))
		assert.Contains(t, lecturekit.ErrorMessage(err), "would be lost")
	})
}
