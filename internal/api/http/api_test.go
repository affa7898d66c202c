package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/walks-service/internal/api/dto"
	"github.com/spec-kit/walks-service/internal/api/http/handlers"
	"github.com/spec-kit/walks-service/internal/auth"
	"github.com/spec-kit/walks-service/internal/config"
	"github.com/spec-kit/walks-service/internal/domain"
	"github.com/spec-kit/walks-service/internal/observability"
	"github.com/spec-kit/walks-service/internal/persistence"
	"github.com/spec-kit/walks-service/internal/service"
	"github.com/spec-kit/walks-service/internal/validation"
)

// In-memory repositories mirroring the Postgres implementations closely
// enough to exercise the HTTP layer.

type memRegionRepo struct {
	regions map[string]domain.Region
}

func newMemRegionRepo() *memRegionRepo {
	return &memRegionRepo{regions: make(map[string]domain.Region)}
}

func (r *memRegionRepo) GetAll(context.Context) ([]domain.Region, error) {
	result := make([]domain.Region, 0, len(r.regions))
	for _, region := range r.regions {
		result = append(result, region)
	}
	return result, nil
}

func (r *memRegionRepo) GetByID(_ context.Context, id string) (*domain.Region, error) {
	region, ok := r.regions[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &region, nil
}

func (r *memRegionRepo) Create(_ context.Context, region *domain.Region) error {
	region.ID = uuid.NewString()
	r.regions[region.ID] = *region
	return nil
}

func (r *memRegionRepo) Update(_ context.Context, id string, region *domain.Region) (*domain.Region, error) {
	if _, ok := r.regions[id]; !ok {
		return nil, pgx.ErrNoRows
	}
	region.ID = id
	r.regions[id] = *region
	return region, nil
}

func (r *memRegionRepo) Delete(_ context.Context, id string) (*domain.Region, error) {
	region, ok := r.regions[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(r.regions, id)
	return &region, nil
}

type memWalkRepo struct {
	walks map[string]domain.Walk
}

func newMemWalkRepo() *memWalkRepo {
	return &memWalkRepo{walks: make(map[string]domain.Walk)}
}

func (r *memWalkRepo) GetAll(context.Context) ([]domain.Walk, error) {
	result := make([]domain.Walk, 0, len(r.walks))
	for _, walk := range r.walks {
		result = append(result, walk)
	}
	return result, nil
}

func (r *memWalkRepo) GetByID(_ context.Context, id string) (*domain.Walk, error) {
	walk, ok := r.walks[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &walk, nil
}

func (r *memWalkRepo) Create(_ context.Context, walk *domain.Walk) error {
	walk.ID = uuid.NewString()
	r.walks[walk.ID] = *walk
	return nil
}

func (r *memWalkRepo) Update(_ context.Context, id string, walk *domain.Walk) (*domain.Walk, error) {
	if _, ok := r.walks[id]; !ok {
		return nil, pgx.ErrNoRows
	}
	walk.ID = id
	r.walks[id] = *walk
	return walk, nil
}

func (r *memWalkRepo) Delete(_ context.Context, id string) (*domain.Walk, error) {
	walk, ok := r.walks[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(r.walks, id)
	return &walk, nil
}

type memDifficultyRepo struct {
	difficulties map[string]domain.WalkDifficulty
}

func newMemDifficultyRepo() *memDifficultyRepo {
	return &memDifficultyRepo{difficulties: make(map[string]domain.WalkDifficulty)}
}

func (r *memDifficultyRepo) GetAll(context.Context) ([]domain.WalkDifficulty, error) {
	result := make([]domain.WalkDifficulty, 0, len(r.difficulties))
	for _, difficulty := range r.difficulties {
		result = append(result, difficulty)
	}
	return result, nil
}

func (r *memDifficultyRepo) GetByID(_ context.Context, id string) (*domain.WalkDifficulty, error) {
	difficulty, ok := r.difficulties[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &difficulty, nil
}

func (r *memDifficultyRepo) Create(_ context.Context, difficulty *domain.WalkDifficulty) error {
	difficulty.ID = uuid.NewString()
	r.difficulties[difficulty.ID] = *difficulty
	return nil
}

func (r *memDifficultyRepo) Update(_ context.Context, id string, difficulty *domain.WalkDifficulty) (*domain.WalkDifficulty, error) {
	if _, ok := r.difficulties[id]; !ok {
		return nil, pgx.ErrNoRows
	}
	difficulty.ID = id
	r.difficulties[id] = *difficulty
	return difficulty, nil
}

func (r *memDifficultyRepo) Delete(_ context.Context, id string) (*domain.WalkDifficulty, error) {
	difficulty, ok := r.difficulties[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	delete(r.difficulties, id)
	return &difficulty, nil
}

type memUserRepo struct {
	user  *domain.User
	roles []string
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	if r.user == nil || !strings.EqualFold(username, r.user.Username) {
		return nil, pgx.ErrNoRows
	}
	clone := *r.user
	return &clone, nil
}

func (r *memUserRepo) GetRoleNames(context.Context, string) ([]string, error) {
	return r.roles, nil
}

type testEnv struct {
	app     *fiber.App
	issuer  *auth.TokenIssuer
	regions *memRegionRepo
	walks   *memWalkRepo
	users   *memUserRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	issuer, err := auth.NewTokenIssuer(config.AuthConfig{
		JWTSecret:             "test-secret",
		JWTIssuer:             "walks-service",
		JWTAudience:           "walks-clients",
		AccessTokenTTLMinutes: 15,
	})
	if err != nil {
		t.Fatalf("NewTokenIssuer: %v", err)
	}

	regions := newMemRegionRepo()
	walks := newMemWalkRepo()
	difficulties := newMemDifficultyRepo()
	users := &memUserRepo{}

	metrics := observability.NewMetrics()
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 0)

	RegisterRoutes(app, RouteConfig{
		Health:           handlers.NewHealthHandler(&persistence.Postgres{}),
		Auth:             handlers.NewAuthHandler(service.NewAuthService(users, issuer)),
		Regions:          handlers.NewRegionsHandler(regions, validation.NewRegionValidator()),
		Walks:            handlers.NewWalksHandler(walks, validation.NewWalkValidator(regions, difficulties)),
		WalkDifficulties: handlers.NewWalkDifficultiesHandler(difficulties, validation.NewWalkDifficultyValidator()),
		Bearer:           auth.NewBearerMiddleware(issuer),
		Metrics:          metrics,
	})

	return &testEnv{app: app, issuer: issuer, regions: regions, walks: walks, users: users}
}

func (e *testEnv) request(t *testing.T, method, path string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeData[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return envelope.Data
}

func decodeError(t *testing.T, resp *http.Response) (code, message string, details map[string]any) {
	t.Helper()
	var envelope struct {
		Error struct {
			Code    string         `json:"code"`
			Message string         `json:"message"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return envelope.Error.Code, envelope.Error.Message, envelope.Error.Details
}

func TestRegions_CreateGetRoundTrip(t *testing.T) {
	env := newTestEnv(t)

	body := dto.AddRegionRequest{
		Code:       "WLG",
		Name:       "Wellington",
		Area:       227755,
		Lat:        1,
		Long:       1,
		Population: 500000,
	}

	resp := env.request(t, http.MethodPost, "/regions", body, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	created := decodeData[dto.RegionResponse](t, resp)
	if created.ID == "" {
		t.Fatal("expected generated id")
	}
	if loc := resp.Header.Get("Location"); loc != fmt.Sprintf("/regions/%s", created.ID) {
		t.Fatalf("unexpected Location header: %q", loc)
	}

	resp = env.request(t, http.MethodGet, "/regions/"+created.ID, nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	fetched := decodeData[dto.RegionResponse](t, resp)
	if fetched != created {
		t.Fatalf("round trip mismatch: created %+v fetched %+v", created, fetched)
	}
}

func TestRegions_FreshDistinctIDs(t *testing.T) {
	env := newTestEnv(t)

	body := dto.AddRegionRequest{Code: "AKL", Name: "Auckland", Area: 1, Lat: 1, Long: 1, Population: 0}

	first := decodeData[dto.RegionResponse](t, env.request(t, http.MethodPost, "/regions", body, ""))
	second := decodeData[dto.RegionResponse](t, env.request(t, http.MethodPost, "/regions", body, ""))
	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("expected fresh distinct ids, got %q and %q", first.ID, second.ID)
	}
}

func TestRegions_ValidationFailure(t *testing.T) {
	env := newTestEnv(t)

	body := dto.AddRegionRequest{Code: "  ", Name: "Wellington", Area: 0, Lat: 1, Long: 1, Population: 0}
	resp := env.request(t, http.MethodPost, "/regions", body, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}

	code, _, details := decodeError(t, resp)
	if code != "VALIDATION_FAILED" {
		t.Fatalf("unexpected error code %s", code)
	}
	if _, ok := details["code"]; !ok {
		t.Fatalf("expected code field error, got %v", details)
	}
	if _, ok := details["area"]; !ok {
		t.Fatalf("expected area field error, got %v", details)
	}
}

func TestRegions_GetMissing(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/regions/"+uuid.NewString(), nil, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestRegions_DeleteReturnsRemoved(t *testing.T) {
	env := newTestEnv(t)

	body := dto.AddRegionRequest{Code: "OTA", Name: "Otago", Area: 2, Lat: 1, Long: 1, Population: 10}
	created := decodeData[dto.RegionResponse](t, env.request(t, http.MethodPost, "/regions", body, ""))

	resp := env.request(t, http.MethodDelete, "/regions/"+created.ID, nil, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	removed := decodeData[dto.RegionResponse](t, resp)
	if removed != created {
		t.Fatalf("expected removed record, got %+v", removed)
	}

	resp = env.request(t, http.MethodDelete, "/regions/"+created.ID, nil, "")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", resp.StatusCode)
	}
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	env.users.user = &domain.User{
		ID:           "user-1",
		Username:     "grace",
		PasswordHash: string(hash),
		EmailAddress: "grace@example.com",
	}
	env.users.roles = []string{"reader"}

	resp := env.request(t, http.MethodPost, "/auth/login", dto.LoginRequest{Username: "grace", Password: "s3cret"}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	login := decodeData[dto.LoginResponse](t, resp)
	if login.Token == "" {
		t.Fatal("expected token in response")
	}
	if _, err := env.issuer.Parse(login.Token); err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}

	resp = env.request(t, http.MethodPost, "/auth/login", dto.LoginRequest{Username: "grace", Password: "wrong"}, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	_, message, _ := decodeError(t, resp)
	if message != "Username or password is incorrect." {
		t.Fatalf("unexpected failure message: %q", message)
	}
}

func TestWalks_RoleGating(t *testing.T) {
	env := newTestEnv(t)

	readerToken, err := env.issuer.Issue(&domain.User{Roles: []string{"reader"}})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	writerToken, err := env.issuer.Issue(&domain.User{Roles: []string{"reader", "writer"}})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	// No token at all.
	resp := env.request(t, http.MethodGet, "/walks", nil, "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	// Reader can list.
	resp = env.request(t, http.MethodGet, "/walks", nil, readerToken)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for reader, got %d", resp.StatusCode)
	}

	// Reader cannot mutate.
	body := dto.AddWalkRequest{Name: "Track A", Length: 5, RegionID: uuid.NewString(), WalkDifficultyID: uuid.NewString()}
	resp = env.request(t, http.MethodPost, "/walks", body, readerToken)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for reader mutation, got %d", resp.StatusCode)
	}

	// Writer hits validation because the foreign keys do not resolve.
	resp = env.request(t, http.MethodPost, "/walks", body, writerToken)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unresolvable foreign keys, got %d", resp.StatusCode)
	}
	_, _, details := decodeError(t, resp)
	if _, ok := details["regionId"]; !ok {
		t.Fatalf("expected regionId error, got %v", details)
	}
}

func TestWalks_WriterCreate(t *testing.T) {
	env := newTestEnv(t)

	writerToken, err := env.issuer.Issue(&domain.User{Roles: []string{"writer", "reader"}})
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	region := decodeData[dto.RegionResponse](t, env.request(t, http.MethodPost, "/regions",
		dto.AddRegionRequest{Code: "WLG", Name: "Wellington", Area: 1, Lat: 1, Long: 1, Population: 0}, ""))
	difficulty := decodeData[dto.WalkDifficultyResponse](t, env.request(t, http.MethodPost, "/walkdifficulty",
		dto.AddWalkDifficultyRequest{Code: "Easy"}, ""))

	body := dto.AddWalkRequest{Name: "Track A", Length: 5, RegionID: region.ID, WalkDifficultyID: difficulty.ID}
	resp := env.request(t, http.MethodPost, "/walks", body, writerToken)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	created := decodeData[dto.WalkResponse](t, resp)
	if created.ID == "" || created.RegionID != region.ID || created.WalkDifficultyID != difficulty.ID {
		t.Fatalf("unexpected created walk: %+v", created)
	}

	fetched := decodeData[dto.WalkResponse](t, env.request(t, http.MethodGet, "/walks/"+created.ID, nil, writerToken))
	if fetched != created {
		t.Fatalf("round trip mismatch: %+v vs %+v", created, fetched)
	}
}
