package view

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/subcommande/Life-game/src/universe"
)

//ClearScreen moves the cursor home and clears the terminal
const ClearScreen = "\x1b[H\x1b[2J"

//ConsoleOut prints every frame to the writer:
//the clear sequence, the field, a blank line and the status line
type ConsoleOut struct {
	u          *universe.Universe
	w          io.Writer
	au         aurora.Aurora
	liveFiller string
	deadFiller string
}

//NewConsoleOut creates the viewer writing to w (stdout when nil), colors enables ANSI colors
func NewConsoleOut(w io.Writer, colors bool) *ConsoleOut {
	if w == nil {
		w = os.Stdout
	}
	au := aurora.NewAurora(colors)
	return &ConsoleOut{
		w:          w,
		au:         au,
		liveFiller: au.Green(universe.LiveGlyph).Bold().String(),
		deadFiller: au.Gray(12, universe.DeadGlyph).String(),
	}
}

func (c *ConsoleOut) Register(u *universe.Universe) {
	c.u = u
}

func (c *ConsoleOut) Refresh() {
	st := c.u.Status()
	a := c.u.Area()

	var b bytes.Buffer
	b.WriteString(ClearScreen)
	b.WriteString(a.RenderWith(c.liveFiller, c.deadFiller))
	b.WriteString("\n\n")
	b.WriteString(c.statusLine(st))
	b.WriteByte('\n')
	_, _ = c.w.Write(b.Bytes())
}

func (c *ConsoleOut) statusLine(st universe.Status) string {
	return fmt.Sprintf("%s: %d, %s: %d, %s: %d",
		c.au.Cyan("Day"), st.Day,
		c.au.Cyan("Alive at start"), st.AliveAtStart,
		c.au.Cyan("Alive now"), st.AliveNow)
}
