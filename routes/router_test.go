package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/00AR/blog-app/config"
	"github.com/00AR/blog-app/store"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: "test-secret", CacheTTL: time.Minute}
	return SetupRouter(cfg, store.NewMemory(), nil)
}

func doJSON(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func signup(t *testing.T, r http.Handler, name, email string) string {
	t.Helper()
	w := doJSON(r, "POST", "/users/user/signup", "", map[string]string{
		"name": name, "email": email, "password": "s3cret",
	})
	assert.Equal(t, 200, w.Code)
	token, _ := decode(t, w)["access_token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func TestSignupAndLoginFlow(t *testing.T) {
	r := newTestRouter()

	signup(t, r, "alice", "alice@example.com")

	// duplicate email
	w := doJSON(r, "POST", "/users/user/signup", "", map[string]string{
		"name": "alice again", "email": "alice@example.com", "password": "other",
	})
	assert.Equal(t, 409, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists!")

	// wrong password
	w = doJSON(r, "POST", "/users/user/login", "", map[string]string{
		"email": "alice@example.com", "password": "wrong",
	})
	assert.Equal(t, 401, w.Code)

	// unregistered email
	w = doJSON(r, "POST", "/users/user/login", "", map[string]string{
		"email": "nobody@example.com", "password": "s3cret",
	})
	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect email/password")

	w = doJSON(r, "POST", "/users/user/login", "", map[string]string{
		"email": "alice@example.com", "password": "s3cret",
	})
	assert.Equal(t, 200, w.Code)
	assert.NotEmpty(t, decode(t, w)["access_token"])
}

func TestAuthRequired(t *testing.T) {
	r := newTestRouter()

	w := doJSON(r, "POST", "/blogs", "", map[string]string{"title": "t", "content": "c"})
	assert.Equal(t, 401, w.Code)

	w = doJSON(r, "POST", "/blogs", "not-a-token", map[string]string{"title": "t", "content": "c"})
	assert.Equal(t, 401, w.Code)
}

func TestIDPatternRejectedEarly(t *testing.T) {
	r := newTestRouter()
	token := signup(t, r, "alice", "alice@example.com")

	// not 24-hex
	w := doJSON(r, "GET", "/blogs/nope", "", nil)
	assert.Equal(t, 400, w.Code)

	// uppercase hex is rejected too
	w = doJSON(r, "PUT", "/blogs/66408BCD87E2E3971500CE0C", token, map[string]string{"title": "t", "content": "c"})
	assert.Equal(t, 400, w.Code)
}

// Full lifecycle: create, detail, react, undo, comment, edit, delete, cascade.
func TestBlogLifecycle(t *testing.T) {
	r := newTestRouter()
	alice := signup(t, r, "alice", "alice@example.com")
	bob := signup(t, r, "bob", "bob@example.com")

	w := doJSON(r, "POST", "/blogs", alice, map[string]string{
		"title": "Test Blog", "content": "Test blog content",
	})
	assert.Equal(t, 200, w.Code)
	blogID, _ := decode(t, w)["_id"].(string)
	assert.Len(t, blogID, 24)

	// detail
	w = doJSON(r, "GET", "/blogs/"+blogID, "", nil)
	assert.Equal(t, 200, w.Code)
	detail := decode(t, w)
	assert.Equal(t, "Test Blog", detail["title"])
	assert.Equal(t, "Test blog content", detail["content"])
	assert.Equal(t, float64(0), detail["likes"])
	assert.Equal(t, float64(0), detail["dislikes"])
	assert.Equal(t, float64(0), detail["comments"])

	// list: summary view, no content field
	w = doJSON(r, "GET", "/blogs", "", nil)
	assert.Equal(t, 200, w.Code)
	listBody := decode(t, w)
	data := listBody["data"].([]interface{})
	assert.Len(t, data, 1)
	_, hasContent := data[0].(map[string]interface{})["content"]
	assert.False(t, hasContent)
	pagination := listBody["pagination"].(map[string]interface{})
	assert.Equal(t, float64(1), pagination["total_count"])
	assert.Equal(t, float64(1), pagination["total_pages"])

	// update is owner-only
	w = doJSON(r, "PUT", "/blogs/"+blogID, bob, map[string]string{"title": "x", "content": "y"})
	assert.Equal(t, 403, w.Code)
	w = doJSON(r, "PUT", "/blogs/"+blogID, alice, map[string]string{
		"title": "Updated title", "content": "Updated blog content",
	})
	assert.Equal(t, 200, w.Code)

	// reactions
	w = doJSON(r, "POST", "/blogs/"+blogID+"/likes", bob, nil)
	assert.Equal(t, 200, w.Code)
	w = doJSON(r, "GET", "/blogs/"+blogID, "", nil)
	assert.Equal(t, float64(1), decode(t, w)["likes"])

	w = doJSON(r, "POST", "/blogs/"+blogID+"/dislikes", bob, nil)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "already reacted")

	w = doJSON(r, "POST", "/blogs/"+blogID+"/applause", bob, nil)
	assert.Equal(t, 400, w.Code) // unknown reaction type

	w = doJSON(r, "DELETE", "/blogs/"+blogID+"/likes", bob, nil)
	assert.Equal(t, 204, w.Code)
	w = doJSON(r, "DELETE", "/blogs/"+blogID+"/likes", bob, nil)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "You have not reacted yet.")
	w = doJSON(r, "GET", "/blogs/"+blogID, "", nil)
	assert.Equal(t, float64(0), decode(t, w)["likes"])

	// comments
	w = doJSON(r, "POST", "/blogs/"+blogID+"/comments", bob, map[string]string{"comment": "test comment"})
	assert.Equal(t, 200, w.Code)
	commentID, _ := decode(t, w)["_id"].(string)
	assert.Len(t, commentID, 24)

	w = doJSON(r, "GET", "/blogs/"+blogID, "", nil)
	assert.Equal(t, float64(1), decode(t, w)["comments"])

	w = doJSON(r, "GET", "/blogs/"+blogID+"/comments", "", nil)
	assert.Equal(t, 200, w.Code)
	var commentList []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &commentList))
	assert.Len(t, commentList, 1)
	assert.Equal(t, "test comment", commentList[0]["comment"])

	// only the author may edit
	w = doJSON(r, "PUT", "/blogs/"+blogID+"/comments/"+commentID, alice, map[string]string{"comment": "nope"})
	assert.Equal(t, 400, w.Code)
	w = doJSON(r, "PUT", "/blogs/"+blogID+"/comments/"+commentID, bob, map[string]string{"comment": "edited comment"})
	assert.Equal(t, 200, w.Code)

	w = doJSON(r, "GET", "/blogs/"+blogID+"/comments", "", nil)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &commentList))
	assert.Equal(t, "edited comment", commentList[0]["comment"])

	w = doJSON(r, "DELETE", "/blogs/"+blogID+"/comments/"+commentID, bob, nil)
	assert.Equal(t, 204, w.Code)
	w = doJSON(r, "GET", "/blogs/"+blogID, "", nil)
	assert.Equal(t, float64(0), decode(t, w)["comments"])

	// delete is owner-only, then cascades
	w = doJSON(r, "DELETE", "/blogs/"+blogID, bob, nil)
	assert.Equal(t, 403, w.Code)
	w = doJSON(r, "DELETE", "/blogs/"+blogID, alice, nil)
	assert.Equal(t, 204, w.Code)

	w = doJSON(r, "GET", "/blogs/"+blogID, "", nil)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Blog with given id does not exists!")
}

func TestListFilterByCreator(t *testing.T) {
	r := newTestRouter()
	alice := signup(t, r, "alice", "alice@example.com")
	bob := signup(t, r, "bob", "bob@example.com")

	for _, tok := range []string{alice, alice, bob} {
		w := doJSON(r, "POST", "/blogs", tok, map[string]string{"title": "t", "content": "c"})
		assert.Equal(t, 200, w.Code)
	}

	w := doJSON(r, "GET", "/blogs?created_by=alice", "", nil)
	assert.Equal(t, 200, w.Code)
	body := decode(t, w)
	assert.Len(t, body["data"].([]interface{}), 2)
	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["total_count"])
}
