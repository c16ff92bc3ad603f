package torrent_files

// Typed representations of the torrent metadata this tool produces. The
// structs are the domain model; translation to the generic key-value tree the
// bencode library works on happens in ToDictionary, so the wire encoding
// never leaks into callers.

type TorrentDescriptor struct {
	Announce     string
	Comment      string
	CreationDate int // epoch seconds, 0 means the key is omitted
	Info         InfoDictionary
}

type InfoDictionary struct {
	Name        string
	PieceLength int
	Pieces      string // concatenated 20-byte digests, opaque bytes
	Length      int
	Files       []TorrentFile
}

type TorrentFile struct {
	Path   []string
	Length int
}

// IsMultiFile reports whether the multi-file shape is encoded. Exactly one of
// the 'length' and 'files' keys appears in the output; a populated Files set
// wins and suppresses 'length'.
func (i InfoDictionary) IsMultiFile() bool {
	return len(i.Files) > 0
}

// TotalSize is the single-file length, or the sum over all file entries.
func (i InfoDictionary) TotalSize() int {
	if !i.IsMultiFile() {
		return i.Length
	}
	total := 0
	for _, f := range i.Files {
		total += f.Length
	}
	return total
}

// PieceCount derives the piece count from the pieces blob rather than the
// sizes, so it reflects what was actually encoded.
func (i InfoDictionary) PieceCount() int {
	return len(i.Pieces) / 20
}

// ToDictionary translates the typed descriptor into the generic tree the
// bencode encoder accepts. Keys with no value ('creation date' when zero,
// 'length' in multi-file mode) are left out entirely rather than encoded
// empty.
func (td TorrentDescriptor) ToDictionary() map[string]any {
	info := map[string]any{
		"name":         td.Info.Name,
		"piece length": td.Info.PieceLength,
		"pieces":       td.Info.Pieces,
	}

	if td.Info.IsMultiFile() {
		files := make([]any, len(td.Info.Files))
		for i, f := range td.Info.Files {
			path := make([]any, len(f.Path))
			for j, segment := range f.Path {
				path[j] = segment
			}
			files[i] = map[string]any{
				"path":   path,
				"length": f.Length,
			}
		}
		info["files"] = files
	} else {
		info["length"] = td.Info.Length
	}

	root := map[string]any{
		"announce": td.Announce,
		"comment":  td.Comment,
		"info":     info,
	}
	if td.CreationDate != 0 {
		root["creation date"] = td.CreationDate
	}
	return root
}
