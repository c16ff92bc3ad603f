package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/c2h5oh/datasize"

	"github.com/chrispritchard/torgen/internal/fixture"
	"github.com/chrispritchard/torgen/internal/terminal"
	"github.com/chrispritchard/torgen/internal/torrent_files"
)

// Generates minimal .torrent fixture files for testing torrent-handling
// code. The piece hashes inside are fabricated and will not verify against
// any real content.

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		fmt.Println("Usage: torgen <single|multi>")
		return 1
	}

	mode := args[0]

	var (
		descriptor torrent_files.TorrentDescriptor
		filename   string
	)
	switch mode {
	case "single":
		descriptor = fixture.BuildSingleFile(fixture.DefaultSingleName, fixture.DefaultSingleSize, fixture.DefaultPieceLength)
		filename = "test-single.torrent"
	case "multi":
		descriptor = fixture.BuildMultiFile(fixture.DefaultMultiName, nil)
		filename = "test-multi.torrent"
	default:
		fmt.Printf("Unknown mode: %s\n", mode)
		return 1
	}

	if err := write_fixture(descriptor, filename); err != nil {
		terminal.Failf("unable to create fixture: %v", err)
		return 1
	}
	return 0
}

func write_fixture(descriptor torrent_files.TorrentDescriptor, filename string) error {
	data, err := torrent_files.Encode(descriptor)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("unable to write %s: %v", filename, err)
	}
	terminal.Successf("Created %s", filename)

	// decoding what was just written doubles as a round-trip check; a
	// failure here means the encoder and decoder disagree
	summary, err := torrent_files.Summarize(data)
	if err != nil {
		return fmt.Errorf("written fixture failed verification: %v", err)
	}

	print_summary(summary)
	return nil
}

func print_summary(summary torrent_files.Summary) {
	human := datasize.ByteSize(summary.TotalSize).HumanReadable()

	terminal.Detailf("Name: %s", summary.Name)
	if summary.FileCount == 0 {
		terminal.Detailf("Size: %d bytes (%s)", summary.TotalSize, human)
	} else {
		terminal.Detailf("Total size: %d bytes (%s) across %d files", summary.TotalSize, human, summary.FileCount)
	}
	terminal.Detailf("Pieces: %d x %d bytes", summary.PieceCount, summary.PieceLength)
	terminal.Detailf("Info hash: %s", hex.EncodeToString(summary.InfoHash[:]))
}
