// shaftbatch sizes a whole spreadsheet of shaft load cases offline:
// one case per row in, one solved diameter per row out.
package main

import (
	"flag"
	"fmt"
	"log"

	"Driveline/internal/calc/importer"
	shaft "Driveline/internal/calc/shaft"

	"github.com/xuri/excelize/v2"
)

func main() {
	inPath := flag.String("in", "cases.xlsx", "input spreadsheet of shaft load cases")
	outPath := flag.String("out", "results.xlsx", "output spreadsheet")
	flag.Parse()

	f, err := excelize.OpenFile(*inPath)
	if err != nil {
		log.Fatalf("open %s: %v", *inPath, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		log.Fatalf("read %s: %v", *inPath, err)
	}
	if len(rows) < 2 {
		log.Fatalf("%s: no data rows", *inPath)
	}

	out := excelize.NewFile()
	defer out.Close()
	outSheet := out.GetSheetName(0)
	header := []interface{}{"row", "criterion", "diameter_mm", "recommended_mm", "yield_factor", "warnings", "error"}
	if err := out.SetSheetRow(outSheet, "A1", &header); err != nil {
		log.Fatalf("write header: %v", err)
	}

	solved := 0
	for i := 1; i < len(rows); i++ {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		record := resultRow(i+1, rows[i])
		if err := out.SetSheetRow(outSheet, cell, &record); err != nil {
			log.Fatalf("write row %d: %v", i+1, err)
		}
		if record[6] == "" {
			solved++
		}
	}

	if err := out.SaveAs(*outPath); err != nil {
		log.Fatalf("save %s: %v", *outPath, err)
	}
	log.Printf("solved %d of %d cases -> %s", solved, len(rows)-1, *outPath)
}

func resultRow(rowNum int, row []string) []interface{} {
	input, err := importer.ParseShaftRow(row)
	if err != nil {
		return []interface{}{rowNum, "", "", "", "", "", fmt.Sprintf("parse: %v", err)}
	}
	res, err := shaft.Calculate(input)
	if err != nil {
		return []interface{}{rowNum, string(input.Criterion), "", "", "", "", err.Error()}
	}
	warnings := ""
	for i, w := range res.Warnings {
		if i > 0 {
			warnings += "; "
		}
		warnings += w
	}
	yield := ""
	if res.YieldFactor > 0 {
		yield = fmt.Sprintf("%.2f", res.YieldFactor)
	}
	return []interface{}{
		rowNum,
		string(res.Criterion),
		fmt.Sprintf("%.2f", res.DiameterMM),
		fmt.Sprintf("%.0f", res.RecommendedMM),
		yield,
		warnings,
		"",
	}
}
