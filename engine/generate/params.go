package generate

// Maximum number of tokens a single generation may produce. MaxLength
// values are clamped against it.
const MaxOutputLength = 512

// Params collects the parameters of one generation call. A Params value
// is immutable for the duration of the call.
type Params struct {
	Prompt        string  // input text for the encoder
	Temperature   float64 // 0 or negative selects deterministic arg-max
	TopP          float64 // nucleus threshold; disabled outside (0,1)
	Seed          uint64  // seed for sampling
	RepeatPenalty float32 // 1.0 switches the penalty off
	RepeatLastN   int     // lookback window for the repeat penalty
	MaxLength     int     // output bound; 0 or negative means MaxOutputLength
}

// maxLength returns the effective output bound, clamped to
// [0, MaxOutputLength].
func (p Params) maxLength() int {
	if p.MaxLength <= 0 {
		return MaxOutputLength
	}
	if p.MaxLength > MaxOutputLength {
		return MaxOutputLength
	}
	return p.MaxLength
}
