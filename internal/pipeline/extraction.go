package pipeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/propscope/underwriter/constants"
	"github.com/propscope/underwriter/gen/ent"
	"github.com/propscope/underwriter/internal/extract"
	"github.com/propscope/underwriter/internal/tablex"
)

const classifyExcerptBytes = 2000

// classifyFiles labels every file that does not carry a doc_type yet.
// Already-labeled files are skipped, so re-delivery is harmless.
func (d *Driver) classifyFiles(ctx context.Context, job *ent.Job) error {
	files, err := d.files.ListUnclassified(ctx, job.ID)
	if err != nil {
		return err
	}

	for _, f := range files {
		excerpt := ""
		if constants.IsTextualMime(f.MimeType) {
			data, err := d.blobs.Get(ctx, f.StorageLocator)
			if err != nil {
				d.logger.Warn("could not read file for classification, using filename only",
					"file_id", f.ID, "error", err)
			} else {
				if len(data) > classifyExcerptBytes {
					data = data[:classifyExcerptBytes]
				}
				excerpt = string(data)
			}
		}

		result := d.classifier.Classify(f.OriginalFilename, excerpt)
		if err := d.files.SetDocType(ctx, f.ID, result.DocType); err != nil {
			return err
		}
		if _, err := d.artifacts.Append(ctx, job.ID, constants.ArtifactDocumentClassified, map[string]any{
			"file_id":    f.ID.String(),
			"filename":   f.OriginalFilename,
			"doc_type":   string(result.DocType),
			"confidence": result.Confidence,
		}); err != nil {
			return err
		}
		d.logger.Info("file classified",
			"job_id", job.ID,
			"file_id", f.ID,
			"doc_type", result.DocType,
			"confidence", result.Confidence,
		)
	}
	return nil
}

// ensureRentRollArtifact tries to produce the rent_roll_parsed artifact for
// the job. The existing-artifact guard means a spreadsheet that already
// parsed keeps a scanned duplicate from being reprocessed into a second
// artifact. A job with no rent-roll files at all is left for the caller's
// required-artifact check.
func (d *Driver) ensureRentRollArtifact(ctx context.Context, job *ent.Job) error {
	exists, err := d.artifacts.ExistsByType(ctx, job.ID, constants.ArtifactRentRollParsed)
	if err != nil || exists {
		return err
	}
	files, err := d.files.ListByDocType(ctx, job.ID, constants.DocTypeRentRoll)
	if err != nil || len(files) == 0 {
		return err
	}

	// preferred path: machine-readable spreadsheets
	for _, f := range files {
		if !constants.IsSpreadsheetMime(f.MimeType) {
			continue
		}
		result, ok := d.tryRentRollSpreadsheet(ctx, job, f)
		if ok {
			return d.persistRentRoll(ctx, job, f, result)
		}
	}

	if !d.caps.OCRTables {
		return nil
	}
	for _, f := range files {
		if constants.IsSpreadsheetMime(f.MimeType) {
			continue
		}
		tables, err := d.ensureTables(ctx, job, f)
		if err != nil {
			// service failure is a warning, not a file failure: an alternate
			// path may still produce the artifact
			d.appendWorkerEvent(ctx, job.ID, workerEvent{
				Stage:  string(constants.JobStatusExtracting),
				Detail: fmt.Sprintf("table extraction for file %s: %v", f.ID, err),
			})
			continue
		}
		result, err := d.rentRollOCR.ExtractRentRoll(ctx, extract.Input{
			FileID:   f.ID,
			Filename: f.OriginalFilename,
			Tables:   tables,
		})
		if err != nil {
			d.markFileParseFailed(ctx, job, f, constants.ArtifactRentRollParseError, err)
			continue
		}
		return d.persistRentRoll(ctx, job, f, result)
	}
	return nil
}

func (d *Driver) tryRentRollSpreadsheet(ctx context.Context, job *ent.Job, f *ent.JobFile) (*extract.RentRollResult, bool) {
	data, err := d.blobs.Get(ctx, f.StorageLocator)
	if err != nil {
		d.markFileParseFailed(ctx, job, f, constants.ArtifactRentRollParseError, err)
		return nil, false
	}
	result, err := d.rentRollSheet.ExtractRentRoll(ctx, extract.Input{
		FileID:   f.ID,
		Filename: f.OriginalFilename,
		MimeType: f.MimeType,
		Data:     data,
	})
	if err != nil {
		d.markFileParseFailed(ctx, job, f, constants.ArtifactRentRollParseError, err)
		return nil, false
	}
	return result, true
}

func (d *Driver) persistRentRoll(ctx context.Context, job *ent.Job, f *ent.JobFile, result *extract.RentRollResult) error {
	if err := extract.ValidateRentRollResult(result); err != nil {
		return fmt.Errorf("rent roll payload validation: %w", err)
	}
	if _, err := d.artifacts.Append(ctx, job.ID, constants.ArtifactRentRollParsed, result); err != nil {
		return err
	}
	status := constants.ParseStatusParsed
	if result.Method == extract.MethodOCRTable {
		status = constants.ParseStatusParsedWarn
	}
	return d.files.MarkParsed(ctx, f.ID, status)
}

// ensureT12Artifact mirrors ensureRentRollArtifact for operating statements.
func (d *Driver) ensureT12Artifact(ctx context.Context, job *ent.Job) error {
	exists, err := d.artifacts.ExistsByType(ctx, job.ID, constants.ArtifactT12Parsed)
	if err != nil || exists {
		return err
	}
	files, err := d.files.ListByDocType(ctx, job.ID, constants.DocTypeT12)
	if err != nil || len(files) == 0 {
		return err
	}

	for _, f := range files {
		if !constants.IsSpreadsheetMime(f.MimeType) {
			continue
		}
		data, err := d.blobs.Get(ctx, f.StorageLocator)
		if err != nil {
			d.markFileParseFailed(ctx, job, f, constants.ArtifactT12ParseError, err)
			continue
		}
		result, err := d.t12Sheet.ExtractT12(ctx, extract.Input{
			FileID:   f.ID,
			Filename: f.OriginalFilename,
			MimeType: f.MimeType,
			Data:     data,
		})
		if err != nil {
			d.markFileParseFailed(ctx, job, f, constants.ArtifactT12ParseError, err)
			continue
		}
		return d.persistT12(ctx, job, f, result)
	}

	if !d.caps.OCRTables {
		return nil
	}
	for _, f := range files {
		if constants.IsSpreadsheetMime(f.MimeType) {
			continue
		}
		tables, err := d.ensureTables(ctx, job, f)
		if err != nil {
			d.appendWorkerEvent(ctx, job.ID, workerEvent{
				Stage:  string(constants.JobStatusExtracting),
				Detail: fmt.Sprintf("table extraction for file %s: %v", f.ID, err),
			})
			continue
		}
		result, err := d.t12OCR.ExtractT12(ctx, extract.Input{
			FileID:   f.ID,
			Filename: f.OriginalFilename,
			Tables:   tables,
		})
		if err != nil {
			d.markFileParseFailed(ctx, job, f, constants.ArtifactT12ParseError, err)
			continue
		}
		return d.persistT12(ctx, job, f, result)
	}
	return nil
}

func (d *Driver) persistT12(ctx context.Context, job *ent.Job, f *ent.JobFile, result *extract.T12Result) error {
	if err := extract.ValidateT12Result(result); err != nil {
		return fmt.Errorf("t12 payload validation: %w", err)
	}
	if _, err := d.artifacts.Append(ctx, job.ID, constants.ArtifactT12Parsed, result); err != nil {
		return err
	}
	status := constants.ParseStatusParsed
	if result.Method == extract.MethodOCRTable {
		status = constants.ParseStatusParsedWarn
	}
	return d.files.MarkParsed(ctx, f.ID, status)
}

func (d *Driver) markFileParseFailed(ctx context.Context, job *ent.Job, f *ent.JobFile, errArtifactType string, cause error) {
	if err := d.files.MarkParseFailed(ctx, f.ID, cause.Error()); err != nil {
		d.logger.Error("failed to record file parse failure", "file_id", f.ID, "error", err)
	}
	if _, err := d.artifacts.Append(ctx, job.ID, errArtifactType, map[string]any{
		"file_id": f.ID.String(),
		"error":   cause.Error(),
	}); err != nil {
		d.logger.Error("failed to append parse error artifact", "file_id", f.ID, "error", err)
	}
}

type tablesPayload struct {
	FileID string          `json:"file_id"`
	Tables []tablex.Matrix `json:"tables"`
}

// ensureTables returns the file's extracted table matrices, calling the
// OCR/table-detection collaborator only when no document_tables_extracted
// artifact exists for the file yet.
func (d *Driver) ensureTables(ctx context.Context, job *ent.Job, f *ent.JobFile) ([]tablex.Matrix, error) {
	existing, err := d.artifacts.ListByType(ctx, job.ID, constants.ArtifactDocumentTables)
	if err != nil {
		return nil, err
	}
	for _, a := range existing {
		var payload tablesPayload
		if err := json.Unmarshal(a.Payload, &payload); err != nil {
			continue
		}
		if payload.FileID == f.ID.String() {
			return payload.Tables, nil
		}
	}

	data, err := d.blobs.Get(ctx, f.StorageLocator)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	raw, err := d.analyzer.AnalyzeTables(ctx, data, f.MimeType)
	if err != nil {
		return nil, fmt.Errorf("analyze tables: %w", err)
	}
	tables := tablex.ToMatrices(raw)
	if _, err := d.artifacts.Append(ctx, job.ID, constants.ArtifactDocumentTables, tablesPayload{
		FileID: f.ID.String(),
		Tables: tables,
	}); err != nil {
		return nil, err
	}
	return tables, nil
}

func (d *Driver) loadRentRollResult(ctx context.Context, jobID uuid.UUID) (*extract.RentRollResult, error) {
	artifact, err := d.artifacts.LatestByType(ctx, jobID, constants.ArtifactRentRollParsed)
	if err != nil {
		return nil, err
	}
	var result extract.RentRollResult
	if err := json.Unmarshal(artifact.Payload, &result); err != nil {
		return nil, fmt.Errorf("unmarshal rent roll payload: %w", err)
	}
	return &result, nil
}

func (d *Driver) loadT12Result(ctx context.Context, jobID uuid.UUID) (*extract.T12Result, error) {
	artifact, err := d.artifacts.LatestByType(ctx, jobID, constants.ArtifactT12Parsed)
	if err != nil {
		return nil, err
	}
	var result extract.T12Result
	if err := json.Unmarshal(artifact.Payload, &result); err != nil {
		return nil, fmt.Errorf("unmarshal t12 payload: %w", err)
	}
	return &result, nil
}
