//go:generate go run gen.go words.xlsx table.go
//go:build ignore
// +build ignore

package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"
	"text/template"

	"github.com/360EntSecGroup-Skylar/excelize"
)

const wordsSheetName = "words"

var wordRegexp = regexp.MustCompile("^[a-z]+$")

type symbolWordMapping struct {
	Symbol byte
	Word   string
}

const codeTemplate = `// Code generated by gen.go; DO NOT EDIT.

package {{.package}}

// symbolOrder lists the alphabet symbols in the order the vocabulary is assigned.
var symbolOrder = [{{len .mappings}}]byte{
	{{- range .mappings}}
	{{printf "%q" .Symbol}},
	{{- end}}
}

var tableWords = [{{len .mappings}}]string{
	{{- range .mappings}}
	{{printf "%q" .Word}},
	{{- end}}
}
`

func readExcelFile(f string) ([]symbolWordMapping, error) {
	var mappings []symbolWordMapping

	wb, err := excelize.OpenFile(f)
	if err != nil {
		return nil, err
	}

	rows := wb.GetRows(wordsSheetName)
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s has no mappings", wordsSheetName)
	}

	// assert if it is formatted in the expected manner
	if rows[0][0] != "symbol" || rows[0][1] != "word" {
		return nil, fmt.Errorf("a column of the first row does not match to the expected values")
	}

	seenSymbols := make(map[string]int)
	seenWords := make(map[string]int)
	for ro, row := range rows[1:] {
		if row[0] == "" {
			break
		}
		if len(row[0]) != 1 {
			return nil, fmt.Errorf("symbol at row %d must be a single character: %q", ro+2, row[0])
		}
		if !wordRegexp.MatchString(row[1]) {
			return nil, fmt.Errorf("word at row %d must consist of lowercase letters: %q", ro+2, row[1])
		}
		if pr, ok := seenSymbols[row[0]]; ok {
			return nil, fmt.Errorf("symbol %q at row %d already appears at row %d", row[0], ro+2, pr)
		}
		if pr, ok := seenWords[row[1]]; ok {
			return nil, fmt.Errorf("word %q at row %d already appears at row %d", row[1], ro+2, pr)
		}
		seenSymbols[row[0]] = ro + 2
		seenWords[row[1]] = ro + 2
		mappings = append(mappings, symbolWordMapping{
			Symbol: row[0][0],
			Word:   row[1],
		})
	}
	if len(mappings) != 65 {
		return nil, fmt.Errorf("expected 65 mappings, got %d", len(mappings))
	}
	return mappings, nil
}

func doIt(dest string, src string, p string) error {
	t, err := template.New("").Parse(codeTemplate)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "reading %s...\n", src)
	mappings, err := readExcelFile(src)
	if err != nil {
		return err
	}
	destFile, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer destFile.Close()
	return t.Execute(
		destFile,
		map[string]interface{}{"package": p, "mappings": mappings},
	)
}

func main() {
	flag.Parse()
	src := flag.Arg(0)
	dest := flag.Arg(1)
	if src == "" {
		fmt.Fprintf(os.Stderr, "specify an .xlsx file\n")
		os.Exit(255)
	}
	if dest == "" {
		fmt.Fprintf(os.Stderr, "specify an output file\n")
		os.Exit(255)
	}
	err := doIt(dest, src, "plainword")
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}
