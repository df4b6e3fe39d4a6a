package output

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinter(t *testing.T) {
	var out, errOut bytes.Buffer
	p := New(&out, &errOut, true)

	p.Message("Exporting files")
	p.Success("Finished exporting %d files", 3)
	p.Warn("locale %s is empty", "fr")

	assert.Equal(t, "Exporting files\nFinished exporting 3 files\n", out.String())
	assert.Equal(t, "Warning: locale fr is empty\n", errOut.String())
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, map[string]int{"files": 2}))
	assert.Equal(t, "{\n  \"files\": 2\n}\n", buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	w := Table(&buf)
	fmt.Fprintln(w, "LOCALE\tPATH")
	fmt.Fprintln(w, "en\tvalues/strings.xml")
	require.NoError(t, w.Flush())
	assert.Equal(t, "LOCALE  PATH\nen      values/strings.xml\n", buf.String())
}
