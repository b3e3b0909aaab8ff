// Package resource names the abstract effect channels that operations read
// from and write to. The IR builder uses these to order side effects that
// don't flow through the value stack, e.g. an SLOAD must not be reordered
// ahead of the SSTORE it observes.
package resource

// A Channel is a named abstract effect slot. Two operations that touch the
// same Channel are ordered relative to one another even though no value
// passes directly between them.
type Channel string

// The nine standard channels, in the order required for compatibility with
// downstream consumers. Do not reorder; some tests rely on Channels()
// returning this exact sequence.
const (
	Storage     Channel = "STORAGE"
	Transient   Channel = "TRANSIENT"
	Memory      Channel = "MEMORY"
	MemSize     Channel = "MEMSIZE"
	ReceiptLogs Channel = "RECEIPT_LOGS"
	Balances    Channel = "BALANCES"
	Code        Channel = "CODE"
	ReturnData  Channel = "RETURNDATA"
	ControlFlow Channel = "CONTROL_FLOW"
)

// Channels returns the nine standard channels in their canonical order.
func Channels() []Channel {
	return []Channel{
		Storage, Transient, Memory, MemSize, ReceiptLogs, Balances, Code, ReturnData, ControlFlow,
	}
}
