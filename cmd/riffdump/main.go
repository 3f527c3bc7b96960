// This tool dumps the chunk structure, audio parameters, and embedded
// metadata of the passed RIFF/WAV file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/riffdump"
)

const missingPathMessage = "You must pass the path of the file to dump"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	doc, err := riffdump.Parse(data)
	if err != nil {
		return err
	}

	if err := riffdump.Dump(out, doc); err != nil {
		return err
	}

	if !doc.IsWave() {
		fmt.Fprintf(out, "note: form type is %q, not WAVE\n", doc.Format[:])
	}

	format := doc.Fmt.Format()
	fmt.Fprintf(out, "Audio: %s, %d channel(s) @ %d Hz, %d bit\n",
		doc.Fmt.FormatName(), format.NumChannels, format.SampleRate, doc.Fmt.BitsPerSample)

	if doc.Metadata != nil {
		printMetadata(out, doc.Metadata)
	}

	return nil
}

func printMetadata(out io.Writer, meta *riffdump.Metadata) {
	fields := []struct {
		name  string
		value string
	}{
		{"Artist", meta.Artist},
		{"Title", meta.Title},
		{"Comments", meta.Comments},
		{"Copyright", meta.Copyright},
		{"CreationDate", meta.CreationDate},
		{"Engineer", meta.Engineer},
		{"Technician", meta.Technician},
		{"Genre", meta.Genre},
		{"Keywords", meta.Keywords},
		{"Medium", meta.Medium},
		{"Product", meta.Product},
		{"Subject", meta.Subject},
		{"Software", meta.Software},
		{"Source", meta.Source},
		{"Location", meta.Location},
		{"TrackNbr", meta.TrackNbr},
	}

	for _, field := range fields {
		if field.value == "" {
			continue
		}

		fmt.Fprintf(out, "%s: %s\n", field.name, field.value)
	}
}
