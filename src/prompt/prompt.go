package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

//DefaultFPS is used when the frame rate line can't be parsed.
const DefaultFPS = 1000.0

//Prompter writes the questions to out and reads the answers line by line from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

//New returns a Prompter. out may be nil to suppress the questions.
func New(in io.Reader, out io.Writer) *Prompter {
	if out == nil {
		out = io.Discard
	}
	return &Prompter{in: bufio.NewReader(in), out: out}
}

//ReadAliveCount asks for the number of cells alive at day 0.
//Unparsable input gives total/2, values above total are clamped to total.
func (p *Prompter) ReadAliveCount(total int) (int, error) {
	fmt.Fprintf(p.out, "Total frames: %d\nPlease write number of alive frames at 0 day: \n", total)
	line, err := p.readLine()
	if err != nil {
		return 0, fmt.Errorf("reading alive count: %w", err)
	}
	return ParseAliveCount(line, total), nil
}

//ReadFrameRate asks for the frames per second.
func (p *Prompter) ReadFrameRate() (float64, error) {
	fmt.Fprintln(p.out, "Please write FPS (0 means max possible): ")
	line, err := p.readLine()
	if err != nil {
		return 0, fmt.Errorf("reading fps: %w", err)
	}
	return ParseFrameRate(line), nil
}

//ParseAliveCount parses an unsigned integer with an optional leading '+' and clamps it to [0, total]
func ParseAliveCount(s string, total int) int {
	n, err := strconv.ParseUint(strings.TrimPrefix(strings.TrimSpace(s), "+"), 10, 64)
	if err != nil {
		return total / 2
	}
	if n > uint64(total) {
		return total
	}
	return int(n)
}

//ParseFrameRate parses a float, DefaultFPS on failure.
func ParseFrameRate(s string) float64 {
	fps, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return DefaultFPS
	}
	return fps
}

//FrameDelay converts fps into the pause before every frame: 1000/fps milliseconds.
//non-positive, NaN and infinite rates mean no pause, tiny rates are capped at the longest Duration
func FrameDelay(fps float64) time.Duration {
	if !(fps > 0) || fps > 1e12 {
		return 0
	}
	d := float64(time.Second) / fps
	if d >= math.MaxInt64 {
		return math.MaxInt64
	}
	return time.Duration(d)
}

//readLine reads one line. EOF after a partial or empty line is not an error,
//the caller gets whatever was read.
func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return line, nil
}
