package vtparser

import (
	"fmt"
	"reflect"
	"testing"
)

// recorder is a Dispatcher that stringifies every action it receives,
// so two Feed runs over the same logical byte stream (but chunked
// differently) can be compared for P6 "Parser determinism".
type recorder struct {
	actions []string
}

func (r *recorder) Print(c rune) { r.actions = append(r.actions, fmt.Sprintf("print(%q)", c)) }
func (r *recorder) Execute(b byte) {
	r.actions = append(r.actions, fmt.Sprintf("execute(%#x)", b))
}
func (r *recorder) CsiDispatch(params Params, intermediates []byte, private byte, final byte) {
	r.actions = append(r.actions, fmt.Sprintf("csi(%v,%q,%q,%q)", params.groups, intermediates, private, final))
}
func (r *recorder) EscDispatch(intermediates []byte, final byte) {
	r.actions = append(r.actions, fmt.Sprintf("esc(%q,%q)", intermediates, final))
}
func (r *recorder) OscDispatch(params [][]byte, bellTerminated bool) {
	r.actions = append(r.actions, fmt.Sprintf("osc(%q,%v)", params, bellTerminated))
}
func (r *recorder) Hook(params Params, intermediates []byte, private byte, final byte) {
	r.actions = append(r.actions, fmt.Sprintf("hook(%v,%q,%q,%q)", params.groups, intermediates, private, final))
}
func (r *recorder) Put(b byte)  { r.actions = append(r.actions, fmt.Sprintf("put(%#x)", b)) }
func (r *recorder) Unhook()     { r.actions = append(r.actions, "unhook()") }

func runChunked(data []byte, chunkSizes []int) []string {
	r := &recorder{}
	p := New(r)
	i := 0
	for _, n := range chunkSizes {
		end := i + n
		if end > len(data) {
			end = len(data)
		}
		p.Feed(data[i:end])
		i = end
	}
	if i < len(data) {
		p.Feed(data[i:])
	}
	return r.actions
}

func TestParserDeterminismAcrossChunking(t *testing.T) {
	data := []byte("hello\x1b[31mworld\x1b[0m\x1b]0;title\x07\x1bP1$q\x1b\\")

	wholeActions := runChunked(data, []int{len(data)})
	byteActions := runChunked(data, ones(len(data)))
	oddActions := runChunked(data, []int{3, 1, 5, 2, 1000})

	if !reflect.DeepEqual(wholeActions, byteActions) {
		t.Errorf("byte-at-a-time feed diverged from whole-buffer feed:\n%v\nvs\n%v", byteActions, wholeActions)
	}
	if !reflect.DeepEqual(wholeActions, oddActions) {
		t.Errorf("oddly-chunked feed diverged from whole-buffer feed:\n%v\nvs\n%v", oddActions, wholeActions)
	}
}

func ones(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = 1
	}
	return out
}
