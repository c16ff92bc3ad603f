package torrent_files

import (
	"bytes"
	"crypto/sha1"
	"fmt"

	bencode "github.com/jackpal/bencode-go"
)

// The bencode library is the one external collaborator here: encoding must be
// deterministic (dictionary keys in byte-lexicographic order, integers as
// decimal ASCII, strings length-prefixed) and Decode must be the exact
// inverse of Marshal on anything Marshal produced. jackpal/bencode-go
// guarantees both.

// Encode serializes the descriptor to its bencoded form.
func Encode(td TorrentDescriptor) ([]byte, error) {
	var buf bytes.Buffer
	if err := bencode.Marshal(&buf, td.ToDictionary()); err != nil {
		return nil, fmt.Errorf("unable to bencode descriptor: %v", err)
	}
	return buf.Bytes(), nil
}

// Decode parses bencoded bytes back into the generic key-value tree.
func Decode(data []byte) (map[string]any, error) {
	decoded, err := bencode.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode bencoded data: %v", err)
	}
	root, ok := decoded.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("invalid torrent: root is not a dict")
	}
	return root, nil
}

// InfoHash computes the SHA-1 of the bencoded info dictionary, by decoding
// the file and re-encoding just the info value. Because the encoding is
// canonical, the re-encoded bytes match the span inside the original file.
func InfoHash(data []byte) ([20]byte, error) {
	var nil_hash [20]byte

	root, err := Decode(data)
	if err != nil {
		return nil_hash, err
	}
	info, err := get_val[map[string]any](root, "info")
	if err != nil {
		return nil_hash, fmt.Errorf("invalid torrent: %v", err)
	}

	var buf bytes.Buffer
	if err := bencode.Marshal(&buf, info); err != nil {
		return nil_hash, fmt.Errorf("unable to re-encode info dict: %v", err)
	}
	return sha1.Sum(buf.Bytes()), nil
}
