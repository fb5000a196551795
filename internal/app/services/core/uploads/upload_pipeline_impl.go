package uploads

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"sync"

	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/models"
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/dto/responses"
	"healthease-client/internal/pkg/exceptions"
	"healthease-client/internal/pkg/utils"

	"go.uber.org/zap"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

type uploadPipeline struct {
	Gateway contracts.APIGateway
	Log     *zap.Logger

	mu         sync.Mutex
	generation uint64
	inFlight   bool
	percent    int
}

// NewUploadPipeline sends a batch of files as one multipart request. Files
// that cannot be read locally are reported in the results and not sent.
func NewUploadPipeline(gateway contracts.APIGateway, logger *zap.Logger) contracts.UploadPipeline {
	return &uploadPipeline{
		Gateway: gateway,
		Log:     logger,
	}
}

// Progress reports the percentage of the upload in flight, if any.
func (p *uploadPipeline) Progress() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.percent, p.inFlight
}

func (p *uploadPipeline) Upload(ctx context.Context, files []contracts.FileHandle, onProgress contracts.ProgressFunc) ([]models.UploadResult, error) {
	requestID := utils.RequestIDFromContext(ctx)
	p.Log.Info("uploadPipeline.Upload called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingFileCountKey, len(files)),
	)

	if len(files) == 0 {
		return nil, exceptions.ErrNoFilesSelected()
	}

	generation := p.begin()
	defer p.finish(generation)

	tracker := newProgressTracker(0, func(percent int) {
		p.record(generation, percent)
		if onProgress != nil {
			onProgress(percent)
		}
	})
	tracker.set(0)

	body, contentType, sentIndexes, results, err := p.buildBody(ctx, files)
	if err != nil {
		p.Log.Error("uploadPipeline.Upload error building multipart body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	localFailures := len(files) - len(sentIndexes)
	if localFailures > 0 {
		p.Log.Warn("uploadPipeline.Upload some files could not be read",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingLocalFileErrorsKey, localFailures),
		)
	}

	if len(sentIndexes) == 0 {
		tracker.set(100)
		return results, nil
	}

	total := int64(body.Len())
	tracker.setTotal(total)
	p.Log.Info("uploadPipeline.Upload sending batch",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingFileCountKey, len(sentIndexes)),
		zap.Int64(constvars.LoggingBytesTotalKey, total),
	)

	var response responses.UploadReports
	err = p.Gateway.Call(ctx, &contracts.APIRequest{
		Method:        constvars.MethodPost,
		Endpoint:      constvars.EndpointReportsUpload,
		RawBody:       &progressReader{reader: body, tracker: tracker},
		ContentType:   contentType,
		ContentLength: total,
	}, &response)
	if err != nil {
		p.Log.Error("uploadPipeline.Upload error sending batch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	perFileErrors := mergeResults(results, sentIndexes, files, response.Results)
	tracker.set(100)

	p.Log.Info("uploadPipeline.Upload succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingFileCountKey, len(results)),
		zap.Int(constvars.LoggingPerFileErrorsKey, perFileErrors+localFailures),
	)
	return results, nil
}

// buildBody writes every readable file under the files field. results has
// one entry per input file; entries for files that were sent are filled in
// after the response arrives.
func (p *uploadPipeline) buildBody(ctx context.Context, files []contracts.FileHandle) (*bytes.Buffer, string, []int, []models.UploadResult, error) {
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	results := make([]models.UploadResult, len(files))
	sentIndexes := make([]int, 0, len(files))

	for i, file := range files {
		results[i].Filename = file.Name()

		content, err := readFile(ctx, file)
		if err != nil {
			results[i].Error = localErrorMessage(err, file.Name())
			continue
		}

		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			quoteEscaper.Replace(constvars.UploadFormFieldFiles), quoteEscaper.Replace(file.Name())))
		header.Set(constvars.HeaderContentType, file.ContentType())

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, "", nil, nil, exceptions.ErrBuildMultipartBody(err)
		}
		if _, err := part.Write(content); err != nil {
			return nil, "", nil, nil, exceptions.ErrBuildMultipartBody(err)
		}
		sentIndexes = append(sentIndexes, i)
	}

	if err := writer.Close(); err != nil {
		return nil, "", nil, nil, exceptions.ErrBuildMultipartBody(err)
	}
	return body, writer.FormDataContentType(), sentIndexes, results, nil
}

// mergeResults pairs server entries with sent files in order. Missing entries
// become errors so every sent file has an outcome.
func mergeResults(results []models.UploadResult, sentIndexes []int, files []contracts.FileHandle, entries []responses.UploadResultEntry) int {
	perFileErrors := 0
	for position, index := range sentIndexes {
		if position >= len(entries) {
			message := constvars.ErrClientUploadResultMissing
			results[index].Error = &message
			perFileErrors++
			continue
		}

		entry := entries[position]
		result := models.UploadResult{
			Filename:        entry.Filename,
			ReportID:        entry.ReportID,
			ConfidenceScore: entry.ConfidenceScore,
			MedicalValues:   entry.MedicalValues,
			ExtractedText:   entry.ExtractedText,
		}
		if result.Filename == "" {
			result.Filename = files[index].Name()
		}

		failed := entry.Error != nil || (entry.Success != nil && !*entry.Success) || entry.ConfidenceScore == nil
		if failed {
			message := constvars.ErrClientUploadFailed
			if entry.Error != nil && *entry.Error != "" {
				message = *entry.Error
			}
			result = models.UploadResult{Filename: result.Filename, Error: &message}
			perFileErrors++
		}
		results[index] = result
	}
	return perFileErrors
}

// readFile reads the whole file before its part is written so a read failure
// never leaves a truncated part in the body.
func readFile(ctx context.Context, file contracts.FileHandle) ([]byte, error) {
	reader, err := file.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	return io.ReadAll(reader)
}

func localErrorMessage(err error, filename string) *string {
	message := exceptions.ErrOpenUploadFile(err, filename).ClientMessage
	return &message
}

func (p *uploadPipeline) begin() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.generation++
	p.inFlight = true
	p.percent = 0
	return p.generation
}

func (p *uploadPipeline) record(generation uint64, percent int) {
	p.mu.Lock()
	if p.generation == generation {
		p.percent = percent
	}
	p.mu.Unlock()
}

// finish resets progress unless a newer upload has started since.
func (p *uploadPipeline) finish(generation uint64) {
	p.mu.Lock()
	if p.generation == generation {
		p.inFlight = false
		p.percent = 0
	}
	p.mu.Unlock()
}
