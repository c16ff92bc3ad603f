package torrent_files

import "fmt"

// Produces a human-oriented digest of an encoded torrent file by decoding it
// again. Running this over bytes the tool just wrote doubles as a round-trip
// check on the encoder/decoder pair.

type Summary struct {
	Name        string
	InfoHash    [20]byte
	PieceLength int
	PieceCount  int
	TotalSize   int
	FileCount   int // 0 for a single-file torrent
}

func Summarize(data []byte) (Summary, error) {
	var nil_summary Summary

	root, err := Decode(data)
	if err != nil {
		return nil_summary, err
	}

	info, err := get_val[map[string]any](root, "info")
	if err != nil {
		return nil_summary, fmt.Errorf("invalid torrent: %v", err)
	}

	name, err := get_val[string](info, "name")
	if err != nil {
		return nil_summary, fmt.Errorf("invalid torrent: %v", err)
	}

	piece_length, err := get_val[int64](info, "piece length")
	if err != nil {
		return nil_summary, fmt.Errorf("invalid torrent: %v", err)
	}

	pieces, err := get_val[string](info, "pieces")
	if err != nil {
		return nil_summary, fmt.Errorf("invalid torrent: %v", err)
	}

	total, file_count, err := summarize_sizes(info)
	if err != nil {
		return nil_summary, err
	}

	hash, err := InfoHash(data)
	if err != nil {
		return nil_summary, err
	}

	return Summary{
		Name:        name,
		InfoHash:    hash,
		PieceLength: int(piece_length),
		PieceCount:  len(pieces) / 20,
		TotalSize:   total,
		FileCount:   file_count,
	}, nil
}

// summarize_sizes resolves the single-file/multi-file split: a torrent must
// carry 'length' or 'files', and never both.
func summarize_sizes(info map[string]any) (total, file_count int, err error) {
	length, err1 := get_val[int64](info, "length")
	files, err2 := get_val[[]any](info, "files")
	if err1 != nil && err2 != nil {
		return 0, 0, fmt.Errorf("invalid torrent: invalid files or missing length")
	}
	if err1 == nil && err2 == nil {
		return 0, 0, fmt.Errorf("invalid torrent: both length and files present")
	}

	if err1 == nil {
		return int(length), 0, nil
	}

	for _, file := range files {
		entry, ok := file.(map[string]any)
		if !ok {
			return 0, 0, fmt.Errorf("invalid torrent: file entries are not valid dictionaries")
		}
		file_length, err := get_val[int64](entry, "length")
		if err != nil {
			return 0, 0, fmt.Errorf("invalid torrent: %v", err)
		}
		total += int(file_length)
		file_count++
	}
	return total, file_count, nil
}

func get_val[T any](m map[string]any, key string) (T, error) {
	var nilT T
	val, exists := m[key]
	if !exists {
		return nilT, fmt.Errorf("key %s was not in map", key)
	}
	res, ok := val.(T)
	if !ok {
		return nilT, fmt.Errorf("key %s's value was an invalid type: %v", key, val)
	}
	return res, nil
}
