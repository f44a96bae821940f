package domain

import "strconv"

// Default decimal scaling for amounts whose record carries no decimals field.
const (
	TokenDecimals  = 9 // tracked token and wrapped SOL
	USDCDecimals   = 6
	NativeDecimals = 9 // lamports per SOL
)

// TransferRecord is one token movement inside a transaction, as reported by
// the provider's flat transfer list. Depending on the upstream shape the
// amount arrives either pre-scaled (Amount) or as a raw integer string plus
// a decimals count (RawAmount/Decimals).
type TransferRecord struct {
	Mint        string
	Symbol      string
	FromAddress string
	ToAddress   string
	Amount      float64 // already scaled, 0 when absent
	RawAmount   string  // raw integer amount, "" when absent
	Decimals    int     // valid only alongside RawAmount
}

// ScaledAmount returns the human-readable amount of the transfer. The
// pre-scaled field wins when present; otherwise the raw amount is scaled by
// the record's own decimals, falling back to defaultDecimals.
func (t *TransferRecord) ScaledAmount(defaultDecimals int) float64 {
	if t.Amount != 0 {
		return t.Amount
	}
	if t.RawAmount == "" {
		return 0
	}
	raw, err := strconv.ParseFloat(t.RawAmount, 64)
	if err != nil {
		return 0
	}
	decimals := t.Decimals
	if decimals <= 0 {
		decimals = defaultDecimals
	}
	return raw / pow10(decimals)
}

// NativeTransferRecord is a movement of the chain's native asset, always
// denominated in lamports (fixed 9-decimal scaling).
type NativeTransferRecord struct {
	FromAddress string
	ToAddress   string
	Lamports    int64
}

// Amount returns the transfer value in SOL.
func (n *NativeTransferRecord) Amount() float64 {
	return float64(n.Lamports) / pow10(NativeDecimals)
}

// SwapLeg is one side of a structured swap sub-record. Amounts here are
// always raw integer strings with an explicit decimals count.
type SwapLeg struct {
	UserAccount string
	Mint        string
	RawAmount   string
	Decimals    int
}

// ScaledAmount returns the leg amount scaled by its own decimals, or by
// defaultDecimals when the record carries none.
func (l *SwapLeg) ScaledAmount(defaultDecimals int) float64 {
	if l.RawAmount == "" {
		return 0
	}
	raw, err := strconv.ParseFloat(l.RawAmount, 64)
	if err != nil {
		return 0
	}
	decimals := l.Decimals
	if decimals <= 0 {
		decimals = defaultDecimals
	}
	return raw / pow10(decimals)
}

// SwapRecord is the provider-specific aggregated swap shape: separate input
// and output legs for one swap instruction, plus an optional native-asset
// input.
type SwapRecord struct {
	TokenInputs    []SwapLeg
	TokenOutputs   []SwapLeg
	NativeInput    *NativeTransferRecord
	NativeLamports int64 // nativeInput amount when the account is unknown
}

// NormalizedEvent is one logical transaction in the uniform internal shape
// every upstream payload variant is coerced into.
type NormalizedEvent struct {
	Source           Source
	EventKind        string // e.g. "SWAP"
	Signature        string
	TimestampSeconds int64
	TokenTransfers   []TransferRecord
	NativeTransfers  []NativeTransferRecord
	Swap             *SwapRecord // nil unless the provider reported the swap shape
}

func pow10(n int) float64 {
	v := 1.0
	for i := 0; i < n; i++ {
		v *= 10
	}
	return v
}
