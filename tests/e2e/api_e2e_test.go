package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/devmart/internal/config"
	"github.com/devmart/internal/db"
	"github.com/devmart/internal/router"
	"github.com/devmart/internal/service"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	// 路由加载模板使用仓库根目录的相对路径
	if err := os.Chdir("../.."); err != nil {
		fmt.Fprintf(os.Stderr, "chdir to repo root: %v\n", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

type e2eSuite struct {
	server *httptest.Server
	public *http.Client
	admin  *http.Client
	home   *db.Page
	draft  *db.Page
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()

	dsn := fmt.Sprintf("file:e2e-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := gdb.AutoMigrate(
		&db.User{},
		&db.Page{},
		&db.PageSection{},
		&db.NavigationItem{},
		&db.ContactSubmission{},
		&db.SystemSetting{},
	); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	db.DB = gdb

	hashed, err := bcrypt.GenerateFromPassword([]byte("e2e-secret"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := db.User{Username: "admin", Password: string(hashed), Role: db.RoleSuperAdmin}
	if err := db.DB.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}

	pageSvc := service.NewPageService(gdb)
	home, err := pageSvc.Create(service.PageInput{Title: "Home", Slug: "home", CreatedBy: user.ID})
	if err != nil {
		t.Fatalf("failed to seed home page: %v", err)
	}
	if _, err := pageSvc.SetStatus(home.ID, db.PageStatusPublished); err != nil {
		t.Fatalf("failed to publish home page: %v", err)
	}

	hero := db.PageSection{
		PageID:       home.ID,
		BlockType:    "Hero2_MarketingAgency",
		BlockProps:   db.PropsMap{"title": "Grow With Devmart", "subtitle": "Full service agency", "btnText": "Go", "btnUrl": "/contact", "imgUrl": "/images/hero.png"},
		OrderIndex:   0,
		IsActive:     true,
		HasContainer: true,
	}
	if err := db.DB.Create(&hero).Error; err != nil {
		t.Fatalf("failed to seed hero section: %v", err)
	}

	draft, err := pageSvc.Create(service.PageInput{Title: "Secret Draft", Slug: "secret-draft", CreatedBy: user.ID})
	if err != nil {
		t.Fatalf("failed to seed draft page: %v", err)
	}

	cfg := config.AppConfig{
		SessionSecret:    "e2e-session-secret",
		BlockTemplateDir: "web/template/blocks",
		SiteBaseURL:      "http://example.test",
		RenderTimeout:    2 * time.Second,
	}
	server := httptest.NewServer(router.SetupRouter(cfg))
	t.Cleanup(server.Close)
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("failed to build cookie jar: %v", err)
	}

	return &e2eSuite{
		server: server,
		public: server.Client(),
		admin:  &http.Client{Jar: jar},
		home:   home,
		draft:  draft,
	}
}

func (s *e2eSuite) login(t *testing.T) {
	t.Helper()
	form := url.Values{"username": {"admin"}, "password": {"e2e-secret"}}
	resp, err := s.admin.PostForm(s.server.URL+"/admin/login", form)
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	if !strings.HasSuffix(resp.Request.URL.Path, "/admin/dashboard") {
		t.Fatalf("login should land on the dashboard, got %s", resp.Request.URL.Path)
	}
}

func (s *e2eSuite) adminJSON(t *testing.T, method, path string, payload any) (*http.Response, []byte) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, s.server.URL+path, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.admin.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}
	return resp, data
}

func (s *e2eSuite) get(t *testing.T, client *http.Client, path string) (int, string) {
	t.Helper()
	resp, err := client.Get(s.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, string(data)
}

func TestE2E_SiteAndAdmin(t *testing.T) {
	suite := newE2ESuite(t)

	t.Run("public pages", suite.testPublicPages)
	suite.login(t)
	t.Run("draft preview", suite.testDraftPreview)
	t.Run("admin page lifecycle", suite.testPageLifecycle)
	t.Run("page editor status controls", suite.testStatusControls)
	t.Run("navigation", suite.testNavigation)
	t.Run("contact inbox", suite.testContactInbox)
	t.Run("settings", suite.testSettings)
}

func (s *e2eSuite) testPublicPages(t *testing.T) {
	status, body := s.get(t, s.public, "/")
	if status != http.StatusOK {
		t.Fatalf("home status = %d", status)
	}
	if !strings.Contains(body, "Grow With Devmart") {
		t.Fatalf("home body missing hero content")
	}

	status, body = s.get(t, s.public, "/home")
	if status != http.StatusOK || !strings.Contains(body, "Grow With Devmart") {
		t.Fatalf("slug route failed: status %d", status)
	}

	if status, _ = s.get(t, s.public, "/no-such-page"); status != http.StatusNotFound {
		t.Fatalf("missing page status = %d, want 404", status)
	}

	// 草稿对匿名访客等同不存在
	if status, _ = s.get(t, s.public, "/secret-draft"); status != http.StatusNotFound {
		t.Fatalf("anonymous draft status = %d, want 404", status)
	}
}

func (s *e2eSuite) testDraftPreview(t *testing.T) {
	status, body := s.get(t, s.admin, "/secret-draft")
	if status != http.StatusOK {
		t.Fatalf("admin draft preview status = %d", status)
	}
	if !strings.Contains(body, "Draft preview") {
		t.Fatal("draft preview must show the draft indicator")
	}
}

func (s *e2eSuite) testPageLifecycle(t *testing.T) {
	resp, data := s.adminJSON(t, http.MethodPost, "/admin/api/pages", map[string]any{"title": "Services"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create page status = %d: %s", resp.StatusCode, data)
	}
	var created struct {
		Page db.Page `json:"page"`
	}
	if err := json.Unmarshal(data, &created); err != nil {
		t.Fatalf("decode create response: %v", err)
	}
	if created.Page.Slug != "services" {
		t.Fatalf("slug = %q, want services", created.Page.Slug)
	}

	pagePath := fmt.Sprintf("/admin/api/pages/%d", created.Page.ID)

	resp, data = s.adminJSON(t, http.MethodPost, pagePath+"/sections", map[string]any{"block_type": "CTA2_Centered"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add section status = %d: %s", resp.StatusCode, data)
	}

	// 草稿阶段公开访问仍是 404
	if status, _ := s.get(t, s.public, "/services"); status != http.StatusNotFound {
		t.Fatalf("unpublished page visible to public: %d", status)
	}

	resp, data = s.adminJSON(t, http.MethodPut, pagePath+"/status", map[string]any{"status": "published"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("publish status = %d: %s", resp.StatusCode, data)
	}

	status, body := s.get(t, s.public, "/services")
	if status != http.StatusOK {
		t.Fatalf("published page status = %d", status)
	}
	if !strings.Contains(body, "Let's build something together") {
		t.Fatalf("published page missing CTA default props")
	}

	resp, data = s.adminJSON(t, http.MethodDelete, pagePath, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete status = %d: %s", resp.StatusCode, data)
	}
	if status, _ := s.get(t, s.public, "/services"); status != http.StatusNotFound {
		t.Fatalf("deleted page still reachable: %d", status)
	}
}

// 编辑器只渲染当前状态允许的流转按钮
func (s *e2eSuite) testStatusControls(t *testing.T) {
	status, body := s.get(t, s.admin, fmt.Sprintf("/admin/pages/%d/edit", s.draft.ID))
	if status != http.StatusOK {
		t.Fatalf("draft editor status = %d", status)
	}
	if !strings.Contains(body, `data-status="published"`) {
		t.Fatal("draft page must offer the publish action")
	}
	if strings.Contains(body, `data-status="archived"`) {
		t.Fatal("draft page must not offer archiving")
	}

	status, body = s.get(t, s.admin, fmt.Sprintf("/admin/pages/%d/edit", s.home.ID))
	if status != http.StatusOK {
		t.Fatalf("published editor status = %d", status)
	}
	if !strings.Contains(body, `data-status="draft"`) || !strings.Contains(body, `data-status="archived"`) {
		t.Fatal("published page must offer unpublish and archive actions")
	}
}

func (s *e2eSuite) testNavigation(t *testing.T) {
	resp, data := s.adminJSON(t, http.MethodPost, "/admin/api/navigation", map[string]any{
		"label":    "Contact",
		"url":      "/contact",
		"location": "header",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create navigation status = %d: %s", resp.StatusCode, data)
	}

	_, body := s.get(t, s.public, "/home")
	if !strings.Contains(body, `href="/contact"`) {
		t.Fatal("header navigation missing from the public page")
	}
}

func (s *e2eSuite) testContactInbox(t *testing.T) {
	payload, _ := json.Marshal(map[string]any{
		"name":    "Jane",
		"email":   "jane@example.com",
		"message": "Hello from the site",
	})
	resp, err := s.public.Post(s.server.URL+"/api/contact", "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("contact submit: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("contact submit status = %d", resp.StatusCode)
	}

	listResp, data := s.adminJSON(t, http.MethodGet, "/admin/api/forms", nil)
	if listResp.StatusCode != http.StatusOK {
		t.Fatalf("inbox status = %d", listResp.StatusCode)
	}
	var inbox struct {
		Submissions []db.ContactSubmission `json:"submissions"`
		UnreadCount int64                  `json:"unreadCount"`
	}
	if err := json.Unmarshal(data, &inbox); err != nil {
		t.Fatalf("decode inbox: %v", err)
	}
	if len(inbox.Submissions) != 1 || inbox.UnreadCount != 1 {
		t.Fatalf("inbox = %d entries / %d unread, want 1/1", len(inbox.Submissions), inbox.UnreadCount)
	}

	readPath := fmt.Sprintf("/admin/api/forms/%d/read", inbox.Submissions[0].ID)
	if resp, data := s.adminJSON(t, http.MethodPut, readPath, map[string]any{"is_read": true}); resp.StatusCode != http.StatusOK {
		t.Fatalf("mark read status = %d: %s", resp.StatusCode, data)
	}
}

func (s *e2eSuite) testSettings(t *testing.T) {
	resp, data := s.adminJSON(t, http.MethodPut, "/admin/api/settings", map[string]any{
		"site_name":     "Devmart Studio",
		"home_slug":     "home",
		"brand_primary": "#1a73e8",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update settings status = %d: %s", resp.StatusCode, data)
	}

	_, body := s.get(t, s.public, "/home")
	if !strings.Contains(body, "Devmart Studio") {
		t.Fatal("public page must reflect the new site name")
	}
	if !strings.Contains(body, "--primary:214 82% 51%") {
		t.Fatal("brand style missing from the public page head")
	}
}
