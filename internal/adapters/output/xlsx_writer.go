package output

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/keebscout/keebscout/internal/domain/entities"
)

const (
	sheetRanked  = "Ranked Products"
	sheetReviews = "Pro Reviews"
)

// WriteXLSX writes a workbook with a ranked-products sheet and a curated
// reviews sheet, returning the file path.
func WriteXLSX(ranked []entities.RankedProduct, meta Metadata, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := writeRankedSheet(f, ranked); err != nil {
		return "", err
	}
	if err := writeReviewsSheet(f, ranked); err != nil {
		return "", err
	}
	f.DeleteSheet("Sheet1")

	path := filepath.Join(dir, fmt.Sprintf("keyboards_%s.xlsx", time.Now().Format("20060102_150405")))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

func writeRankedSheet(f *excelize.File, ranked []entities.RankedProduct) error {
	if _, err := f.NewSheet(sheetRanked); err != nil {
		return err
	}

	for col, name := range csvHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetRanked, cell, name); err != nil {
			return err
		}
	}

	for row, rp := range ranked {
		for col, value := range csvRow(row+1, rp) {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetRanked, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeReviewsSheet(f *excelize.File, ranked []entities.RankedProduct) error {
	if _, err := f.NewSheet(sheetReviews); err != nil {
		return err
	}

	header := []string{"product_title", "source", "verdict", "pros", "cons", "best_for", "ergo_notes"}
	for col, name := range header {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetReviews, cell, name); err != nil {
			return err
		}
	}

	row := 2
	for _, rp := range ranked {
		for _, review := range rp.Reviews {
			values := []string{
				rp.Product.Title,
				review.Source,
				review.Verdict,
				review.Pros,
				review.Cons,
				review.BestFor,
				review.ErgoNotes,
			}
			for col, value := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheetReviews, cell, value); err != nil {
					return err
				}
			}
			row++
		}
	}
	return nil
}
