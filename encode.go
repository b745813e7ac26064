package finanflow

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeTransactions writes txs as JSONL, one transaction per line, in ledger order.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	return encodeLines(w, txs)
}

// DecodeTransactions reads transactions written by EncodeTransactions.
//
// A JSON array of transactions is accepted too, it is how lists exported by
// the browser version of the application are shaped.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	return decodeLines[Transaction](r)
}

// EncodeReceivers writes rs as JSONL, one receiver per line.
func EncodeReceivers(w io.Writer, rs []Receiver) error {
	return encodeLines(w, rs)
}

// DecodeReceivers reads receivers written by EncodeReceivers, or a JSON array.
func DecodeReceivers(r io.Reader) ([]Receiver, error) {
	return decodeLines[Receiver](r)
}

func encodeLines[T any](w io.Writer, records []T) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for _, rec := range records {
		// Encode terminates each record with a newline.
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func decodeLines[T any](r io.Reader) ([]T, error) {
	br := bufio.NewReader(r)
	if first, err := peekNonSpace(br); err == nil && first == '[' {
		var records []T
		if err := json.NewDecoder(br).Decode(&records); err != nil {
			return nil, fmt.Errorf("could not decode list: %w", err)
		}
		return records, nil
	}

	var records []T
	scanner := bufio.NewScanner(br)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec T
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("format error on line %d %q: %w", n, string(line), err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return records, nil
}

// peekNonSpace returns the first non blank byte of br without consuming it.
func peekNonSpace(br *bufio.Reader) (byte, error) {
	for {
		b, err := br.Peek(1)
		if err != nil {
			return 0, err
		}
		switch b[0] {
		case ' ', '\t', '\r', '\n':
			br.ReadByte()
		default:
			return b[0], nil
		}
	}
}
