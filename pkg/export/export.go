package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/Marcelo07sd/rlc/pkg/analysis"
	"github.com/Marcelo07sd/rlc/pkg/solver"
)

var transientHeader = []string{"time_s", "input_V", "current_A", "vR_V", "vL_V", "vC_V"}

var responseHeader = []string{"freq_Hz", "zmag_ohm", "zphase_deg", "imag_A", "iphase_deg", "vR_V", "vL_V", "vC_V"}

// WriteCSV streams the transient traces as CSV rows.
func WriteCSV(w io.Writer, res *solver.Result) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(transientHeader); err != nil {
		return err
	}

	for i := range res.Time {
		record := []string{
			fmt.Sprintf("%.8f", res.Time[i]),
			fmt.Sprintf("%.8f", res.Input[i]),
			fmt.Sprintf("%.8f", res.Current[i]),
			fmt.Sprintf("%.8f", res.VR[i]),
			fmt.Sprintf("%.8f", res.VL[i]),
			fmt.Sprintf("%.8f", res.VC[i]),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

// SaveCSV writes the transient traces to path. A UTF-8 BOM keeps
// Excel from misreading the file.
func SaveCSV(path string, res *solver.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.WriteString("\xEF\xBB\xBF"); err != nil {
		return err
	}

	return WriteCSV(file, res)
}

// SaveXLSX writes the transient traces as a spreadsheet via the
// stream writer, one header row then data.
func SaveXLSX(path string, res *solver.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Transient"
	f.SetSheetName("Sheet1", sheet)

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(transientHeader))
	for i, h := range transientHeader {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i := range res.Time {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		err := sw.SetRow(cell, []interface{}{
			res.Time[i],
			res.Input[i],
			res.Current[i],
			res.VR[i],
			res.VL[i],
			res.VC[i],
		})
		if err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}

	return f.SaveAs(path)
}

// WriteResponseCSV streams a frequency sweep as CSV rows.
func WriteResponseCSV(w io.Writer, resp *analysis.Response) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write(responseHeader); err != nil {
		return err
	}

	for i := range resp.Freq {
		record := []string{
			fmt.Sprintf("%.8f", resp.Freq[i]),
			fmt.Sprintf("%.8f", resp.ZMag[i]),
			fmt.Sprintf("%.8f", resp.ZPhase[i]),
			fmt.Sprintf("%.8f", resp.IMag[i]),
			fmt.Sprintf("%.8f", resp.IPhase[i]),
			fmt.Sprintf("%.8f", resp.VRMag[i]),
			fmt.Sprintf("%.8f", resp.VLMag[i]),
			fmt.Sprintf("%.8f", resp.VCMag[i]),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	return writer.Error()
}

// SaveResponseCSV writes a frequency sweep to path with a UTF-8 BOM.
func SaveResponseCSV(path string, resp *analysis.Response) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.WriteString("\xEF\xBB\xBF"); err != nil {
		return err
	}

	return WriteResponseCSV(file, resp)
}

// SaveResponseXLSX writes a frequency sweep as a spreadsheet.
func SaveResponseXLSX(path string, resp *analysis.Response) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "FrequencyResponse"
	f.SetSheetName("Sheet1", sheet)

	sw, err := f.NewStreamWriter(sheet)
	if err != nil {
		return err
	}

	header := make([]interface{}, len(responseHeader))
	for i, h := range responseHeader {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return err
	}

	for i := range resp.Freq {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		err := sw.SetRow(cell, []interface{}{
			resp.Freq[i],
			resp.ZMag[i],
			resp.ZPhase[i],
			resp.IMag[i],
			resp.IPhase[i],
			resp.VRMag[i],
			resp.VLMag[i],
			resp.VCMag[i],
		})
		if err != nil {
			return err
		}
	}

	if err := sw.Flush(); err != nil {
		return err
	}

	return f.SaveAs(path)
}
