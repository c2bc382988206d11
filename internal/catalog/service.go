package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"tribald/internal/store"
	"tribald/internal/translate"
	"tribald/internal/vision"
	"tribald/pkg/types"
)

// VisionModel is the slice of the Ollama client the service needs.
type VisionModel interface {
	Describe(ctx context.Context, prompt string, image []byte) (string, error)
	Tags(ctx context.Context) ([]types.Model, error)
	Healthy(ctx context.Context) bool
	Model() string
	Host() string
}

// GenerateOptions carries the creator-mode knobs, straight from the query
// string. Empty values select the defaults.
type GenerateOptions struct {
	// Comma-separated language names, e.g. "hindi,tamil".
	Languages string
	Length    string
	Audience  string
	Tone      string
}

// saveTimeout bounds one background persist.
const saveTimeout = 30 * time.Second

// Service orchestrates a generation: describe the upload, parse the reply,
// resolve translations against the cache, persist in the background.
type Service struct {
	vision     VisionModel
	translator translate.Translator
	store      *store.Store
	uploadsDir string
	log        zerolog.Logger
	started    time.Time

	wg           sync.WaitGroup
	savesTotal   atomic.Uint64
	saveErrors   atomic.Uint64
	savesPending atomic.Int64
	lastErr      atomic.Value // string
}

// New builds a Service. uploadsDir may be empty to disable upload retention.
func New(v VisionModel, tr translate.Translator, st *store.Store, uploadsDir string, log zerolog.Logger) *Service {
	return &Service{
		vision:     v,
		translator: tr,
		store:      st,
		uploadsDir: uploadsDir,
		log:        log,
		started:    time.Now(),
	}
}

// Generate runs creator mode: identify the art form and produce a styled
// English description plus requested translations.
func (s *Service) Generate(ctx context.Context, upload []byte, opts GenerateOptions) (types.GenerateResponse, error) {
	var resp types.GenerateResponse
	langs, err := translate.ParseLanguages(opts.Languages)
	if err != nil {
		generateTotal.WithLabelValues("creator", "rejected").Inc()
		return resp, ErrValidation(err.Error())
	}
	prompt, err := vision.CreatorPrompt(opts.Length, opts.Audience, opts.Tone)
	if err != nil {
		generateTotal.WithLabelValues("creator", "rejected").Inc()
		return resp, ErrValidation(err.Error())
	}
	ext, err := sniffImage(upload)
	if err != nil {
		generateTotal.WithLabelValues("creator", "rejected").Inc()
		return resp, err
	}

	desc, err := s.describe(ctx, prompt, upload)
	if err != nil {
		generateTotal.WithLabelValues("creator", "error").Inc()
		return resp, err
	}

	translations, fresh, err := s.resolveTranslations(ctx, desc.English, langs)
	if err != nil {
		generateTotal.WithLabelValues("creator", "error").Inc()
		return resp, err
	}

	s.persistAsync(desc, "", fresh, upload, ext)
	generateTotal.WithLabelValues("creator", "ok").Inc()

	return types.GenerateResponse{
		ArtName:      desc.ArtName,
		ArtStyle:     desc.ArtStyle,
		Region:       desc.Region,
		English:      desc.English,
		Translations: translations,
	}, nil
}

// GenerateHistory runs scholar mode: answer a historical/cultural question
// about the artwork. The request's question wins over the model's echo.
func (s *Service) GenerateHistory(ctx context.Context, upload []byte, question, languages string) (types.HistoryGenerateResponse, error) {
	var resp types.HistoryGenerateResponse
	langs, err := translate.ParseLanguages(languages)
	if err != nil {
		generateTotal.WithLabelValues("scholar", "rejected").Inc()
		return resp, ErrValidation(err.Error())
	}
	ext, err := sniffImage(upload)
	if err != nil {
		generateTotal.WithLabelValues("scholar", "rejected").Inc()
		return resp, err
	}
	if question == "" {
		question = vision.DefaultQuestion
	}

	desc, err := s.describe(ctx, vision.ScholarPrompt(question), upload)
	if err != nil {
		generateTotal.WithLabelValues("scholar", "error").Inc()
		return resp, err
	}
	desc.Question = question

	translations, fresh, err := s.resolveTranslations(ctx, desc.English, langs)
	if err != nil {
		generateTotal.WithLabelValues("scholar", "error").Inc()
		return resp, err
	}

	s.persistAsync(desc, question, fresh, upload, ext)
	generateTotal.WithLabelValues("scholar", "ok").Inc()

	return types.HistoryGenerateResponse{
		ArtName:      desc.ArtName,
		ArtStyle:     desc.ArtStyle,
		Region:       desc.Region,
		Question:     question,
		English:      desc.English,
		Translations: translations,
	}, nil
}

func (s *Service) describe(ctx context.Context, prompt string, upload []byte) (types.Description, error) {
	start := time.Now()
	raw, err := s.vision.Describe(ctx, prompt, upload)
	visionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.setLastError(err)
		if ctx.Err() != nil {
			return types.Description{}, ctx.Err()
		}
		return types.Description{}, ErrModelUnavailable("vision model: " + err.Error())
	}
	desc, err := vision.ParseDescription(raw)
	if err != nil {
		s.setLastError(err)
		return types.Description{}, ErrBadModelOutput("vision model reply: " + err.Error())
	}
	return desc, nil
}

// resolveTranslations serves requested languages from the cached row when
// the exact English text was seen before, and translates the rest. Returns
// the merged map plus the freshly translated subset for persistence.
func (s *Service) resolveTranslations(ctx context.Context, english string, langs []string) (map[string]string, map[string]string, error) {
	existing, err := s.store.FindByEnglish(ctx, english)
	if err != nil {
		return nil, nil, err
	}
	merged := make(map[string]string, len(langs))
	var missing []string
	for _, lang := range langs {
		if existing != nil {
			if v := existing.Translation(lang); v != "" {
				merged[lang] = v
				translationsTotal.WithLabelValues(lang, "cache").Inc()
				continue
			}
		}
		missing = append(missing, lang)
	}
	fresh, err := translate.Batch(ctx, s.translator, english, missing)
	if err != nil {
		s.setLastError(err)
		return nil, nil, err
	}
	for lang, v := range fresh {
		merged[lang] = v
		translationsTotal.WithLabelValues(lang, "fresh").Inc()
	}
	return merged, fresh, nil
}

// persistAsync mirrors the original's background DB task: the response does
// not wait for the row to land. Close drains in-flight saves.
func (s *Service) persistAsync(desc types.Description, question string, fresh map[string]string, upload []byte, ext string) {
	imagePath, err := retainUpload(s.uploadsDir, upload, ext)
	if err != nil {
		// Retention is best-effort; the row is still worth saving.
		s.log.Warn().Err(err).Msg("retain upload")
	}
	row := &store.Artwork{
		English:   desc.English,
		ArtName:   desc.ArtName,
		ArtStyle:  desc.ArtStyle,
		Region:    desc.Region,
		Question:  question,
		ImagePath: imagePath,
	}
	for lang, v := range fresh {
		row.SetTranslation(lang, v)
	}
	s.savesTotal.Add(1)
	s.savesPending.Add(1)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.savesPending.Add(-1)
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := s.store.Save(ctx, row); err != nil {
			s.saveErrors.Add(1)
			s.setLastError(err)
			s.log.Error().Err(err).Str("art_name", row.ArtName).Msg("persist artwork")
			return
		}
		s.log.Debug().Str("art_name", row.ArtName).Msg("artwork persisted")
	}()
}

// History returns persisted rows, newest first. skip below zero is treated
// as zero; limit is clamped to [1,100] with a default of 20.
func (s *Service) History(ctx context.Context, skip, limit int) ([]types.ArtworkRecord, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	rows, err := s.store.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	records := make([]types.ArtworkRecord, 0, len(rows))
	for i := range rows {
		records = append(records, rows[i].Record())
	}
	return records, nil
}

// Models lists the models available on the Ollama host.
func (s *Service) Models(ctx context.Context) ([]types.Model, error) {
	models, err := s.vision.Tags(ctx)
	if err != nil {
		s.setLastError(err)
		return nil, ErrModelUnavailable("ollama: " + err.Error())
	}
	return models, nil
}

// Status reports service counters for GET /status.
func (s *Service) Status() types.StatusResponse {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	count, err := s.store.Count(ctx)
	if err != nil {
		s.setLastError(err)
	}
	var lastErr string
	if v, ok := s.lastErr.Load().(string); ok {
		lastErr = v
	}
	return types.StatusResponse{
		OllamaHost:      s.vision.Host(),
		VisionModel:     s.vision.Model(),
		Artworks:        count,
		SavesTotal:      s.savesTotal.Load(),
		SaveErrorsTotal: s.saveErrors.Load(),
		SavesPending:    s.savesPending.Load(),
		LastError:       lastErr,
		UptimeSeconds:   int64(time.Since(s.started).Seconds()),
		ServerTimeUnix:  time.Now().Unix(),
	}
}

// Ready reports whether the service can take generation traffic.
func (s *Service) Ready(ctx context.Context) bool {
	return s.vision.Healthy(ctx)
}

// Close drains in-flight background saves and closes the store.
func (s *Service) Close() error {
	s.wg.Wait()
	return s.store.Close()
}

func (s *Service) setLastError(err error) {
	if err != nil {
		s.lastErr.Store(err.Error())
	}
}
