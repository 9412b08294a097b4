package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"gridcalc/contracts"
)

const (
	ReplViewport  = 10
	ReplCellWidth = 12
)

// Repl is an interactive terminal session over one in-process engine. It
// reads commands line by line, applies them to the sheet and redraws a
// ReplViewport-sized window of the grid after every command.
type Repl struct {
	sheet         contracts.Sheet
	canonicalizer contracts.Canonicalizer
	history       *UndoHistory
	clipboard     [][]int32

	in  io.Reader
	out io.Writer

	topLeft contracts.Cell
	doPrint bool
	now     func() time.Time
}

func NewRepl(sheet contracts.Sheet, in io.Reader, out io.Writer) *Repl {
	return &Repl{
		sheet:         sheet,
		canonicalizer: NewCanonicalizer(),
		history:       NewUndoHistory(),
		in:            in,
		out:           out,
		doPrint:       true,
		now:           time.Now,
	}
}

// Run loops until the q command or end of input. The prompt carries the
// previous command's wall time and ok/err status.
func (r *Repl) Run() error {
	scanner := bufio.NewScanner(r.in)
	status := "ok"
	elapsed := 0.0

	r.printBoard()
	for {
		_, _ = fmt.Fprintf(r.out, "[%.1f] (%s) > ", elapsed, status)

		if !scanner.Scan() {
			return scanner.Err()
		}

		var quit bool
		status, elapsed, quit = r.ProcessCommand(scanner.Text())
		if quit {
			return nil
		}
	}
}

// ProcessCommand normalizes, dispatches and times one input line, then
// redraws the board. Empty input is a no-op reported as ok.
func (r *Repl) ProcessCommand(input string) (status string, seconds float64, quit bool) {
	input = normalizeReplInput(input)
	if input == "" {
		return "ok", 0, false
	}
	if input == "q" {
		return "ok", 0, true
	}

	start := r.now()
	status = "ok"
	if !r.runCommand(input) {
		status = "err"
	}
	seconds = r.now().Sub(start).Seconds()

	r.printBoard()
	return status, seconds, false
}

// runCommand dispatches one normalized line: a line starting with an
// uppercase letter and containing '=' assigns a cell, anything else is a
// frontend command.
func (r *Repl) runCommand(input string) bool {
	if input[0] >= 'A' && input[0] <= 'Z' {
		if eq := strings.IndexByte(input, '='); eq >= 0 {
			return r.assignCell(input[:eq], input[eq+1:])
		}
	}

	switch {
	case input == "disable_output":
		r.doPrint = false
	case input == "enable_output":
		r.doPrint = true
	case input == "w":
		r.scroll(-ReplViewport, 0)
	case input == "s":
		r.scroll(ReplViewport, 0)
	case input == "a":
		r.scroll(0, -ReplViewport)
	case input == "d":
		r.scroll(0, ReplViewport)
	case input == "undo":
		return r.undo()
	case input == "redo":
		return r.redo()
	case strings.HasPrefix(input, "scroll_to "):
		return r.scrollTo(strings.TrimPrefix(input, "scroll_to "))
	case strings.HasPrefix(input, "save("):
		return r.saveToFile(input)
	case strings.HasPrefix(input, "load("):
		return r.loadFromFile(input)
	case strings.HasPrefix(input, "copy("):
		return r.copyRange(input)
	case strings.HasPrefix(input, "cut("):
		return r.cutRange(input)
	case strings.HasPrefix(input, "paste("):
		return r.paste(input)
	case strings.HasPrefix(input, "autofill("):
		return r.autofill(input)
	default:
		return false
	}
	return true
}

func (r *Repl) assignCell(cellText string, expression string) bool {
	rows, cols := r.sheet.Dims()
	cell, ok := ParseCellReference(cellText, rows, cols)
	if !ok {
		return false
	}

	before := r.sheet.CreateSnapshot()
	if _, err := r.sheet.SetCellValue(cell, r.canonicalizer.NormalizeExpression(expression)); err != nil {
		return false
	}
	r.history.Push(before)
	return true
}

func (r *Repl) undo() bool {
	restored, ok := r.history.Undo(r.sheet.CreateSnapshot())
	if !ok {
		return false
	}
	return r.sheet.ApplySnapshot(restored) == nil
}

func (r *Repl) redo() bool {
	restored, ok := r.history.Redo(r.sheet.CreateSnapshot())
	if !ok {
		return false
	}
	return r.sheet.ApplySnapshot(restored) == nil
}

func (r *Repl) scroll(rowDelta int, colDelta int) {
	rows, cols := r.sheet.Dims()
	r.topLeft.Row = clampScroll(r.topLeft.Row+rowDelta, rows)
	r.topLeft.Col = clampScroll(r.topLeft.Col+colDelta, cols)
}

func (r *Repl) scrollTo(cellText string) bool {
	rows, cols := r.sheet.Dims()
	cell, ok := ParseCellReference(cellText, rows, cols)
	if !ok {
		return false
	}
	r.topLeft = cell
	return true
}

func (r *Repl) saveToFile(command string) bool {
	path, ok := parenArgument(command)
	if !ok || path == "" {
		return false
	}

	file, err := os.Create(path)
	if err != nil {
		return false
	}
	defer file.Close()

	return r.sheet.ExportValues(file) == nil
}

func (r *Repl) loadFromFile(command string) bool {
	path, ok := parenArgument(command)
	if !ok || path == "" {
		return false
	}

	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	before := r.sheet.CreateSnapshot()
	if err = r.sheet.ImportValues(file); err != nil {
		_ = r.sheet.ApplySnapshot(before)
		return false
	}
	r.history.Push(before)
	r.topLeft = contracts.Cell{}
	return true
}

// captureValues reads the rectangle's computed values. Errored cells read
// as their stored zero.
func (r *Repl) captureValues(topLeft contracts.Cell, bottomRight contracts.Cell) [][]int32 {
	values := make([][]int32, 0, bottomRight.Row-topLeft.Row+1)
	for row := topLeft.Row; row <= bottomRight.Row; row++ {
		rowValues := make([]int32, 0, bottomRight.Col-topLeft.Col+1)
		for col := topLeft.Col; col <= bottomRight.Col; col++ {
			value, _ := r.sheet.GetCellValue(contracts.Cell{Row: row, Col: col})
			rowValues = append(rowValues, value)
		}
		values = append(values, rowValues)
	}
	return values
}

func (r *Repl) copyRange(command string) bool {
	topLeft, bottomRight, ok := r.parenRangeArgument(command)
	if !ok {
		return false
	}
	r.clipboard = r.captureValues(topLeft, bottomRight)
	return true
}

// cutRange copies the rectangle, then zeroes every source cell.
func (r *Repl) cutRange(command string) bool {
	topLeft, bottomRight, ok := r.parenRangeArgument(command)
	if !ok {
		return false
	}
	r.clipboard = r.captureValues(topLeft, bottomRight)

	before := r.sheet.CreateSnapshot()
	for row := topLeft.Row; row <= bottomRight.Row; row++ {
		for col := topLeft.Col; col <= bottomRight.Col; col++ {
			if _, err := r.sheet.SetCellValue(contracts.Cell{Row: row, Col: col}, "0"); err != nil {
				_ = r.sheet.ApplySnapshot(before)
				return false
			}
		}
	}
	r.history.Push(before)
	return true
}

// paste writes the clipboard rectangle with its top-left at the target cell,
// rejected when the rectangle would not fit the grid.
func (r *Repl) paste(command string) bool {
	target, ok := parenArgument(command)
	if !ok || len(r.clipboard) == 0 {
		return false
	}

	rows, cols := r.sheet.Dims()
	topLeft, ok := ParseCellReference(target, rows, cols)
	if !ok {
		return false
	}
	if topLeft.Row+len(r.clipboard) > rows || topLeft.Col+len(r.clipboard[0]) > cols {
		return false
	}

	before := r.sheet.CreateSnapshot()
	for rowOffset, values := range r.clipboard {
		for colOffset, value := range values {
			cell := contracts.Cell{Row: topLeft.Row + rowOffset, Col: topLeft.Col + colOffset}
			if _, err := r.sheet.SetCellValue(cell, strconv.FormatInt(int64(value), 10)); err != nil {
				_ = r.sheet.ApplySnapshot(before)
				return false
			}
		}
	}
	r.history.Push(before)
	return true
}

// autofill extends the series in a rectangle downward to the destination
// row, preferring constant, then geometric, then arithmetic progressions.
func (r *Repl) autofill(command string) bool {
	argument, ok := parenArgument(command)
	if !ok {
		return false
	}
	rangeText, destText, found := strings.Cut(argument, ",")
	if !found {
		return false
	}

	rows, cols := r.sheet.Dims()
	topLeft, bottomRight, ok := parseRangeText(rangeText, rows, cols)
	if !ok {
		return false
	}
	dest, ok := ParseCellReference(destText, rows, cols)
	if !ok {
		return false
	}

	fill, ok := r.detectSeries(topLeft, bottomRight)
	if !ok {
		return false
	}

	before := r.sheet.CreateSnapshot()
	for row := bottomRight.Row + 1; row <= dest.Row; row++ {
		for col := bottomRight.Col; col <= dest.Col && col < cols; col++ {
			previous, _ := r.sheet.GetCellValue(contracts.Cell{Row: row - 1, Col: col})
			next := fill(previous)
			cell := contracts.Cell{Row: row, Col: col}
			if _, err := r.sheet.SetCellValue(cell, strconv.FormatInt(int64(next), 10)); err != nil {
				_ = r.sheet.ApplySnapshot(before)
				return false
			}
		}
	}
	r.history.Push(before)
	return true
}

// detectSeries classifies the rectangle's columns as one shared series and
// returns the step function producing the next value from the previous one.
func (r *Repl) detectSeries(topLeft contracts.Cell, bottomRight contracts.Cell) (func(int32) int32, bool) {
	first, _ := r.sheet.GetCellValue(topLeft)

	constant := true
	for row := topLeft.Row; row <= bottomRight.Row && constant; row++ {
		for col := topLeft.Col; col <= bottomRight.Col; col++ {
			if value, _ := r.sheet.GetCellValue(contracts.Cell{Row: row, Col: col}); value != first {
				constant = false
				break
			}
		}
	}
	if constant {
		return func(int32) int32 { return first }, true
	}

	// ratio and difference need at least two rows to compare
	if topLeft.Row == bottomRight.Row {
		return nil, false
	}

	below, _ := r.sheet.GetCellValue(contracts.Cell{Row: topLeft.Row + 1, Col: topLeft.Col})
	ratio := float64(first) / float64(below)

	geometric := true
	for row := topLeft.Row; row < bottomRight.Row && geometric; row++ {
		for col := topLeft.Col; col <= bottomRight.Col; col++ {
			upper, _ := r.sheet.GetCellValue(contracts.Cell{Row: row, Col: col})
			lower, _ := r.sheet.GetCellValue(contracts.Cell{Row: row + 1, Col: col})
			if float64(upper)/float64(lower) != ratio {
				geometric = false
				break
			}
		}
	}
	if geometric {
		return func(previous int32) int32 { return int32(float64(previous) / ratio) }, true
	}

	difference := first - below

	arithmetic := true
	for row := topLeft.Row; row < bottomRight.Row && arithmetic; row++ {
		for col := topLeft.Col; col <= bottomRight.Col; col++ {
			upper, _ := r.sheet.GetCellValue(contracts.Cell{Row: row, Col: col})
			lower, _ := r.sheet.GetCellValue(contracts.Cell{Row: row + 1, Col: col})
			if upper-lower != difference {
				arithmetic = false
				break
			}
		}
	}
	if arithmetic {
		return func(previous int32) int32 { return previous - difference }, true
	}

	return nil, false
}

func (r *Repl) printBoard() {
	if !r.doPrint {
		return
	}

	rows, cols := r.sheet.Dims()
	rowCount := min(ReplViewport, rows-r.topLeft.Row)
	colCount := min(ReplViewport, cols-r.topLeft.Col)

	_, _ = fmt.Fprintf(r.out, "%-*s", ReplCellWidth, "")
	for col := r.topLeft.Col; col < r.topLeft.Col+colCount; col++ {
		_, _ = fmt.Fprintf(r.out, "%-*s", ReplCellWidth, columnHeader(col))
	}
	_, _ = fmt.Fprintln(r.out)

	for row := r.topLeft.Row; row < r.topLeft.Row+rowCount; row++ {
		_, _ = fmt.Fprintf(r.out, "%-*d", ReplCellWidth, row+1)
		for col := r.topLeft.Col; col < r.topLeft.Col+colCount; col++ {
			value, cellErr := r.sheet.GetCellValue(contracts.Cell{Row: row, Col: col})
			if cellErr != contracts.NoError {
				_, _ = fmt.Fprintf(r.out, "%-*s", ReplCellWidth, "ERR")
			} else {
				_, _ = fmt.Fprintf(r.out, "%-*d", ReplCellWidth, value)
			}
		}
		_, _ = fmt.Fprintln(r.out)
	}
}

func (r *Repl) parenRangeArgument(command string) (contracts.Cell, contracts.Cell, bool) {
	argument, ok := parenArgument(command)
	if !ok {
		return contracts.Cell{}, contracts.Cell{}, false
	}
	rows, cols := r.sheet.Dims()
	return parseRangeText(argument, rows, cols)
}

// parenArgument extracts the text between a command's opening parenthesis
// and the final closing one.
func parenArgument(command string) (string, bool) {
	open := strings.IndexByte(command, '(')
	if open < 0 || !strings.HasSuffix(command, ")") {
		return "", false
	}
	return command[open+1 : len(command)-1], true
}

func parseRangeText(rangeText string, rows int, cols int) (contracts.Cell, contracts.Cell, bool) {
	first, second, found := strings.Cut(rangeText, ":")
	if !found {
		return contracts.Cell{}, contracts.Cell{}, false
	}
	topLeft, ok := ParseCellReference(first, rows, cols)
	if !ok {
		return contracts.Cell{}, contracts.Cell{}, false
	}
	bottomRight, ok := ParseCellReference(second, rows, cols)
	if !ok || topLeft.Row > bottomRight.Row || topLeft.Col > bottomRight.Col {
		return contracts.Cell{}, contracts.Cell{}, false
	}
	return topLeft, bottomRight, true
}

func clampScroll(position int, extent int) int {
	limit := extent - ReplViewport
	if position > limit {
		position = limit
	}
	if position < 0 {
		position = 0
	}
	return position
}

// normalizeReplInput collapses whitespace between alphanumerics to a single
// space and drops all other whitespace, so "scroll_to  A1" and " A1 = 5 "
// dispatch the same as their tight spellings.
func normalizeReplInput(input string) string {
	runes := []rune(input)
	var normalized strings.Builder
	normalized.Grow(len(input))

	i := 0
	for i < len(runes) {
		if !unicode.IsSpace(runes[i]) {
			normalized.WriteRune(runes[i])
			i++
			continue
		}
		if i > 0 && i+1 < len(runes) &&
			isAlphanumeric(runes[i-1]) && isAlphanumericAfterSpaces(runes, i) {
			normalized.WriteRune(' ')
		}
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
	}
	return normalized.String()
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isAlphanumericAfterSpaces(runes []rune, i int) bool {
	for ; i < len(runes); i++ {
		if !unicode.IsSpace(runes[i]) {
			return isAlphanumeric(runes[i])
		}
	}
	return false
}
