package torrent_files

import (
	"strings"
	"testing"
)

func TestToDictionaryKeySelection(t *testing.T) {
	tests := []struct {
		name          string
		descriptor    TorrentDescriptor
		want_keys     []string
		want_absent   []string
		want_info_key string
	}{
		{
			name: "single file with creation date",
			descriptor: TorrentDescriptor{
				Announce:     "http://t",
				Comment:      "c",
				CreationDate: 42,
				Info: InfoDictionary{
					Name:        "n",
					PieceLength: 512,
					Pieces:      strings.Repeat("x", 20),
					Length:      100,
				},
			},
			want_keys:     []string{"announce", "comment", "creation date", "info"},
			want_info_key: "length",
		},

		{
			name: "multi file omits creation date and length",
			descriptor: TorrentDescriptor{
				Announce: "http://t",
				Comment:  "c",
				Info: InfoDictionary{
					Name:        "n",
					PieceLength: 512,
					Pieces:      strings.Repeat("x", 40),
					Files: []TorrentFile{
						{Path: []string{"a.txt"}, Length: 100},
					},
				},
			},
			want_keys:     []string{"announce", "comment", "info"},
			want_absent:   []string{"creation date"},
			want_info_key: "files",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {

			tree := tt.descriptor.ToDictionary()

			for _, k := range tt.want_keys {
				if _, ok := tree[k]; !ok {
					t.Errorf("key %q missing from tree", k)
				}
			}
			for _, k := range tt.want_absent {
				if _, ok := tree[k]; ok {
					t.Errorf("key %q should not be in tree", k)
				}
			}

			info, ok := tree["info"].(map[string]any)
			if !ok {
				t.Fatalf("info is not a dictionary")
			}
			if _, ok := info[tt.want_info_key]; !ok {
				t.Errorf("info key %q missing", tt.want_info_key)
			}

			other := "files"
			if tt.want_info_key == "files" {
				other = "length"
			}
			if _, ok := info[other]; ok {
				t.Errorf("info should carry exactly one of length/files, found %q too", other)
			}
		})
	}
}

func TestInfoDictionaryTotals(t *testing.T) {
	single := InfoDictionary{Length: 1024, Pieces: strings.Repeat("x", 40)}
	if single.TotalSize() != 1024 {
		t.Errorf("single TotalSize() = %d, want 1024", single.TotalSize())
	}
	if single.PieceCount() != 2 {
		t.Errorf("single PieceCount() = %d, want 2", single.PieceCount())
	}

	multi := InfoDictionary{
		Files: []TorrentFile{
			{Path: []string{"a"}, Length: 1000},
			{Path: []string{"b"}, Length: 2000},
		},
	}
	if multi.TotalSize() != 3000 {
		t.Errorf("multi TotalSize() = %d, want 3000", multi.TotalSize())
	}
}
