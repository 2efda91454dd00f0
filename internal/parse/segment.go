package parse

// Block is one unit of documentation output: a run of prose lines followed
// by the code lines they describe. Prose always precedes code within a
// block; once a block holds code, further prose only arrives via a sentinel
// opening a new block.
type Block struct {
	Prose []string
	Code  []string
}

// mode tracks which half of the current block is being filled.
type mode int

const (
	inProse mode = iota
	inCode
)

// Segment folds the lines of source into an ordered list of blocks.
//
// The fold starts in prose mode. A sentinel line seen while in code mode
// closes the current block; that is the only way a block after the first
// begins. Sentinels seen while already in prose mode are absorbed as empty
// prose lines. Blank lines inside a prose run are discarded, blank lines
// inside code are kept verbatim. Always returns at least one block, so a
// file starting with code yields a first block with empty prose and a file
// ending in comments yields a final block with no code.
func Segment(source string) []Block {
	var (
		blocks  []Block
		current Block
		m       mode
	)

	for _, line := range Lines(source) {
		kind, body := Classify(line)
		switch {
		case m == inCode && kind == CommentStart:
			blocks = append(blocks, current)
			current = Block{}
			m = inProse
		case m == inProse && (kind == CommentStart || kind == CommentBody):
			current.Prose = append(current.Prose, body)
		case m == inProse && kind == Blank:
			// Separator between prose and the code below it, not content.
		default:
			m = inCode
			current.Code = append(current.Code, line)
		}
	}

	return append(blocks, current)
}
