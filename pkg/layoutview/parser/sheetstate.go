package parser

import (
	"archive/zip"
	"encoding/xml"
	"errors"
	"io"

	"github.com/ukaji3/layoutview-go/pkg/layoutview/models"
)

const workbookPart = "xl/workbook.xml"

var errPartNotFound = errors.New("package part not found")

type xmlWorkbook struct {
	Sheets struct {
		Sheet []xmlSheet `xml:"sheet"`
	} `xml:"sheets"`
}

type xmlSheet struct {
	Name  string `xml:"name,attr"`
	State string `xml:"state,attr"`
}

// readSheetStates maps sheet names to visibility using the state attribute
// in workbook.xml. excelize only exposes a visible/not-visible flag.
func readSheetStates(xlsxPath string) (map[string]models.SheetVisibility, error) {
	r, err := zip.OpenReader(xlsxPath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	data, err := readZipFile(&r.Reader, workbookPart)
	if err != nil {
		return nil, err
	}
	return parseSheetStates(data)
}

func parseSheetStates(data []byte) (map[string]models.SheetVisibility, error) {
	var wb xmlWorkbook
	if err := xml.Unmarshal(data, &wb); err != nil {
		return nil, err
	}

	result := make(map[string]models.SheetVisibility, len(wb.Sheets.Sheet))
	for _, s := range wb.Sheets.Sheet {
		if s.Name == "" {
			continue
		}
		result[s.Name] = visibilityFromState(s.State)
	}
	return result, nil
}

func visibilityFromState(state string) models.SheetVisibility {
	switch state {
	case "hidden":
		return models.Hidden
	case "veryHidden":
		return models.VeryHidden
	}
	return models.Visible
}

func readZipFile(r *zip.Reader, name string) ([]byte, error) {
	for _, f := range r.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, errPartNotFound
}
