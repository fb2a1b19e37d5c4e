package chain

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/sha3"
)

// Minimal contract ABI codec. It covers exactly the argument and return
// types the platform contracts use: address, uint256, uint8, bool, string,
// address[] and uint256[]. Word size is 32 bytes throughout.

const wordSize = 32

// Arg is a single encoded call argument. Static arguments occupy one head
// word; dynamic arguments put an offset in the head and their payload in the
// tail.
type Arg struct {
	static  []byte
	dynamic []byte
}

// AddressArg encodes an address argument.
func AddressArg(addr string) Arg {
	return Arg{static: padAddress(addr)}
}

// Uint256Arg encodes a uint256 argument. A nil value encodes as zero.
func Uint256Arg(v *big.Int) Arg {
	if v == nil {
		v = new(big.Int)
	}
	return Arg{static: padBig(v)}
}

// BoolArg encodes a bool argument.
func BoolArg(v bool) Arg {
	word := make([]byte, wordSize)
	if v {
		word[wordSize-1] = 1
	}
	return Arg{static: word}
}

// StringArg encodes a dynamic string argument.
func StringArg(s string) Arg {
	data := []byte(s)
	payload := padBig(big.NewInt(int64(len(data))))
	payload = append(payload, rightPad(data)...)
	return Arg{dynamic: payload}
}

// Selector returns the 4-byte function selector for a canonical signature
// such as "balanceOf(address)".
func Selector(signature string) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(signature))
	return h.Sum(nil)[:4]
}

// EncodeCall builds the calldata for a method call: selector followed by the
// head/tail encoded arguments. The result is 0x-prefixed hex.
func EncodeCall(signature string, args ...Arg) string {
	head := make([]byte, 0, wordSize*len(args))
	tail := make([]byte, 0)
	tailBase := wordSize * len(args)

	for _, arg := range args {
		if arg.dynamic != nil {
			head = append(head, padBig(big.NewInt(int64(tailBase+len(tail))))...)
			tail = append(tail, arg.dynamic...)
			continue
		}
		head = append(head, arg.static...)
	}

	data := append(Selector(signature), head...)
	data = append(data, tail...)
	return "0x" + hex.EncodeToString(data)
}

// DecodeBool decodes a single bool return value.
func DecodeBool(result string) (bool, error) {
	words, err := returnWords(result, 1)
	if err != nil {
		return false, err
	}
	return words[0][wordSize-1] != 0, nil
}

// DecodeUint256 decodes a single uint256 return value.
func DecodeUint256(result string) (*big.Int, error) {
	words, err := returnWords(result, 1)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(words[0]), nil
}

// DecodeUint8 decodes a single uint8 return value.
func DecodeUint8(result string) (uint8, error) {
	v, err := DecodeUint256(result)
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() || v.Uint64() > 0xff {
		return 0, fmt.Errorf("uint8 return out of range: %s", v)
	}
	return uint8(v.Uint64()), nil
}

// DecodeAddress decodes a single address return value as 0x-prefixed lowercase hex.
func DecodeAddress(result string) (string, error) {
	words, err := returnWords(result, 1)
	if err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(words[0][wordSize-20:]), nil
}

// DecodeString decodes a single dynamic string return value.
func DecodeString(result string) (string, error) {
	data, err := returnBytes(result)
	if err != nil {
		return "", err
	}

	payload, err := dynamicPayload(data, 0)
	if err != nil {
		return "", err
	}
	return string(payload), nil
}

// DecodeAddressArray decodes a single address[] return value.
func DecodeAddressArray(result string) ([]string, error) {
	elems, err := arrayElements(result)
	if err != nil {
		return nil, err
	}

	addrs := make([]string, 0, len(elems))
	for _, word := range elems {
		addrs = append(addrs, "0x"+hex.EncodeToString(word[wordSize-20:]))
	}
	return addrs, nil
}

// DecodeUint256Array decodes a single uint256[] return value.
func DecodeUint256Array(result string) ([]*big.Int, error) {
	elems, err := arrayElements(result)
	if err != nil {
		return nil, err
	}

	values := make([]*big.Int, 0, len(elems))
	for _, word := range elems {
		values = append(values, new(big.Int).SetBytes(word))
	}
	return values, nil
}

// ── decode internals ──────────────────────────────────────────────────────────

func returnBytes(result string) ([]byte, error) {
	trimmed := strings.TrimPrefix(strings.TrimSpace(result), "0x")
	data, err := hex.DecodeString(trimmed)
	if err != nil {
		return nil, fmt.Errorf("malformed return data: %w", err)
	}
	return data, nil
}

func returnWords(result string, min int) ([][]byte, error) {
	data, err := returnBytes(result)
	if err != nil {
		return nil, err
	}
	if len(data) < min*wordSize || len(data)%wordSize != 0 {
		return nil, fmt.Errorf("return data is %d bytes, want at least %d full words", len(data), min)
	}

	words := make([][]byte, 0, len(data)/wordSize)
	for i := 0; i < len(data); i += wordSize {
		words = append(words, data[i:i+wordSize])
	}
	return words, nil
}

// dynamicPayload resolves the offset word at headPos and returns the length-
// prefixed payload it points at.
func dynamicPayload(data []byte, headPos int) ([]byte, error) {
	if len(data) < headPos+wordSize {
		return nil, fmt.Errorf("return data too short for offset word")
	}

	offset := new(big.Int).SetBytes(data[headPos : headPos+wordSize])
	if !offset.IsInt64() || offset.Int64()+wordSize > int64(len(data)) {
		return nil, fmt.Errorf("dynamic offset out of bounds")
	}

	start := int(offset.Int64())
	length := new(big.Int).SetBytes(data[start : start+wordSize])
	if !length.IsInt64() || int64(start+wordSize)+length.Int64() > int64(len(data)) {
		return nil, fmt.Errorf("dynamic length out of bounds")
	}

	payloadStart := start + wordSize
	return data[payloadStart : payloadStart+int(length.Int64())], nil
}

func arrayElements(result string) ([][]byte, error) {
	data, err := returnBytes(result)
	if err != nil {
		return nil, err
	}
	if len(data) < wordSize {
		return nil, fmt.Errorf("return data too short for offset word")
	}

	offset := new(big.Int).SetBytes(data[:wordSize])
	if !offset.IsInt64() || offset.Int64()+wordSize > int64(len(data)) {
		return nil, fmt.Errorf("array offset out of bounds")
	}

	start := offset.Int64()
	count := new(big.Int).SetBytes(data[start : start+wordSize])
	elemsStart := start + wordSize
	if !count.IsInt64() || elemsStart+count.Int64()*wordSize > int64(len(data)) {
		return nil, fmt.Errorf("array elements out of bounds")
	}

	elems := make([][]byte, 0, count.Int64())
	for i := int64(0); i < count.Int64(); i++ {
		from := elemsStart + i*wordSize
		elems = append(elems, data[from:from+wordSize])
	}
	return elems, nil
}

// ── encode internals ──────────────────────────────────────────────────────────

func padAddress(addr string) []byte {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(addr)), "0x")
	raw, err := hex.DecodeString(trimmed)
	if err != nil || len(raw) > wordSize {
		return make([]byte, wordSize)
	}

	word := make([]byte, wordSize)
	copy(word[wordSize-len(raw):], raw)
	return word
}

func padBig(v *big.Int) []byte {
	word := make([]byte, wordSize)
	raw := v.Bytes()
	if len(raw) > wordSize {
		raw = raw[len(raw)-wordSize:]
	}
	copy(word[wordSize-len(raw):], raw)
	return word
}

func rightPad(data []byte) []byte {
	if len(data)%wordSize == 0 {
		return data
	}
	padded := make([]byte, ((len(data)/wordSize)+1)*wordSize)
	copy(padded, data)
	return padded
}
