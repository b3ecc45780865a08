package release

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli"
)

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	app := cli.NewApp()
	app.Name = "numbase"
	app.Version = "1.2.3"
	app.Writer = &buf
	PrintVersion(cli.NewContext(app, nil, nil))
	assert.Equal(t, "numbase version 1.2.3\ncommit unknown\nDate:   unknown\n", buf.String())
}
