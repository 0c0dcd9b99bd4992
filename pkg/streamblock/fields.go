// Copyright 2025 Certen Protocol
//
// Field-number table for the two protobuf schemas this package decodes.
// No .proto schema ships in the example pack (StreamingFast's firehose
// sf.bstream.v1 and sf.ethereum.type.v2 schemas are an external, closed-
// source contract this decoder consumes but does not define — spec §6,
// "the decoder is a consumer, not an authority, of those schemas"), so the
// field numbers below are this decoder's own documented wire contract
// rather than a verified transcription of the upstream .proto. The outer
// envelope's payload_buffer is instead located structurally (the single
// top-level bytes field holding the inner serialized block, which by
// construction dwarfs the envelope's scalar fields) so that choice does
// not depend on guessing a field number at all.

package streamblock

// Inner Ethereum Block message field numbers.
const (
	fieldBlockNumber  = 1
	fieldBlockHash    = 2
	fieldBlockHeader  = 5
	fieldBlockTraces  = 10
)

// BlockHeader submessage field numbers.
const (
	fieldHdrParentHash       = 1
	fieldHdrUncleHash        = 2
	fieldHdrCoinbase         = 3
	fieldHdrStateRoot        = 4
	fieldHdrTransactionsRoot = 5
	fieldHdrReceiptRoot      = 6
	fieldHdrLogsBloom        = 7
	fieldHdrDifficulty       = 8
	fieldHdrNumber           = 9
	fieldHdrGasLimit         = 10
	fieldHdrGasUsed          = 11
	fieldHdrTimestamp        = 12
	fieldHdrExtraData        = 13
	fieldHdrMixHash          = 14
	fieldHdrNonce            = 15
	fieldHdrBaseFeePerGas    = 17
	fieldHdrWithdrawalsRoot  = 18
	fieldHdrBlobGasUsed      = 19
	fieldHdrExcessBlobGas    = 20
	fieldHdrParentBeaconRoot = 21
	fieldHdrTotalDifficulty  = 22
)

// TransactionTrace submessage field numbers.
const (
	fieldTraceIndex       = 1
	fieldTraceType        = 2
	fieldTraceNonce       = 3
	fieldTraceGasPrice    = 4
	fieldTraceGasTipCap   = 5
	fieldTraceGasFeeCap   = 6
	fieldTraceGas         = 7
	fieldTraceTo          = 8
	fieldTraceValue       = 9
	fieldTraceData        = 10
	fieldTraceV           = 11
	fieldTraceR           = 12
	fieldTraceS           = 13
	fieldTraceSuccess     = 14
	fieldTraceCumGasUsed  = 15
	fieldTraceLogsBloom   = 16
	fieldTraceStateRoot   = 17
	fieldTraceChainID     = 18
)

// Inner Solana Block message field numbers. sf.solana.type.v1.Block doesn't
// ship a .proto in the example pack either; slot is the one field this
// decoder's grounding material actually names (firehose-protos-examples'
// solana_response.rs reads block.slot), so it's the only field extracted.
// Everything else in the message — transactions, rewards, the parent
// blockhash — is opaque passthrough this toolkit never inspects.
const (
	fieldSolanaSlot = 1
)
