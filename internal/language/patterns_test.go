package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// firstMatch runs every pattern of a language over a line and returns the
// captured identifiers, mirroring how the analyzer consumes the catalog.
func firstMatch(t *testing.T, lang Language, line string) []string {
	t.Helper()
	var names []string
	for _, re := range PatternsFor(lang) {
		for _, m := range re.FindAllStringSubmatch(line, -1) {
			names = append(names, m[1])
		}
	}
	return names
}

func TestEveryPatternHasOneCaptureGroup(t *testing.T) {
	for _, lang := range Languages() {
		for _, re := range PatternsFor(lang) {
			assert.Equal(t, 1, re.NumSubexp(), "%s pattern %q", lang, re.String())
		}
	}
}

func TestPythonPatterns(t *testing.T) {
	assert.Contains(t, firstMatch(t, Python, "def handle_request(req):"), "handle_request")
	assert.Contains(t, firstMatch(t, Python, "async def fetch_data(url):"), "fetch_data")
	assert.Contains(t, firstMatch(t, Python, "class RequestHandler:"), "RequestHandler")
	assert.Contains(t, firstMatch(t, Python, "class Parser(Base):"), "Parser")
	assert.Empty(t, firstMatch(t, Python, "result = compute(x)"))
}

func TestJavaScriptPatterns(t *testing.T) {
	assert.Contains(t, firstMatch(t, JavaScript, "export function renderPage(props) {"), "renderPage")
	assert.Contains(t, firstMatch(t, JavaScript, "async function loadUser(id) {"), "loadUser")
	assert.Contains(t, firstMatch(t, JavaScript, "export const formatDate = (d) => d.toISOString()"), "formatDate")
	assert.Contains(t, firstMatch(t, JavaScript, "const useAuth = () => {"), "useAuth")
	assert.Contains(t, firstMatch(t, JavaScript, "class EventBus {"), "EventBus")
}

func TestTypeScriptSharesJavaScript(t *testing.T) {
	require.Equal(t, len(PatternsFor(JavaScript)), len(PatternsFor(TypeScript)))
	assert.Contains(t, firstMatch(t, TypeScript, "export function parseConfig(raw: string): Config {"), "parseConfig")
}

func TestRustPatterns(t *testing.T) {
	assert.Contains(t, firstMatch(t, Rust, "pub fn read_header(buf: &[u8]) -> Header {"), "read_header")
	assert.Contains(t, firstMatch(t, Rust, "async fn connect(addr: &str) {"), "connect")
	assert.Contains(t, firstMatch(t, Rust, "fn drain<T>(items: Vec<T>) {"), "drain")
	assert.Contains(t, firstMatch(t, Rust, "pub struct Connection {"), "Connection")
	assert.Contains(t, firstMatch(t, Rust, "trait Encoder {"), "Encoder")
}

func TestGoPatterns(t *testing.T) {
	assert.Contains(t, firstMatch(t, Go, "func parseLine(s string) (string, error) {"), "parseLine")
	assert.Contains(t, firstMatch(t, Go, "func (s *Scanner) walk(dir string) error {"), "walk")
	assert.Contains(t, firstMatch(t, Go, "type RuleSet struct {"), "RuleSet")
	assert.Contains(t, firstMatch(t, Go, "type Provider interface {"), "Provider")
}

func TestCppPatterns(t *testing.T) {
	names := firstMatch(t, CPP, "void Widget::repaint(int flags) {")
	assert.Contains(t, names, "repaint")
	assert.Contains(t, firstMatch(t, CPP, "class RenderContext {"), "RenderContext")
}

func TestCSharpPatterns(t *testing.T) {
	assert.Contains(t, firstMatch(t, CSharp, "public async Task<User> GetUser(int id)"), "GetUser")
	assert.Contains(t, firstMatch(t, CSharp, "public sealed class OrderService"), "OrderService")
	assert.Contains(t, firstMatch(t, CSharp, "public interface IRepository"), "IRepository")
	assert.Contains(t, firstMatch(t, CSharp, "public record Point(int X, int Y)"), "Point")
	assert.Contains(t, firstMatch(t, CSharp, "~OrderService()"), "OrderService")
}

func TestRubyPatterns(t *testing.T) {
	assert.Contains(t, firstMatch(t, Ruby, "def valid?"), "valid?")
	assert.Contains(t, firstMatch(t, Ruby, "def save!"), "save!")
	assert.Contains(t, firstMatch(t, Ruby, "module Billing"), "Billing")
}

func TestShellPatterns(t *testing.T) {
	assert.Contains(t, firstMatch(t, Shell, "function deploy_app() {"), "deploy_app")
	assert.Contains(t, firstMatch(t, Shell, "cleanup() {"), "cleanup")
}

func TestClojurePatterns(t *testing.T) {
	assert.Contains(t, firstMatch(t, Clojure, "(defn parse-edn [s]"), "parse-edn")
	assert.Contains(t, firstMatch(t, Clojure, "(defmacro with-conn [& body]"), "with-conn")
}

func TestRPatterns(t *testing.T) {
	assert.Contains(t, firstMatch(t, R, "load_dataset <- function(path) {"), "load_dataset")
	assert.Contains(t, firstMatch(t, R, "normalize = function(x) {"), "normalize")
}

func TestObjCPatterns(t *testing.T) {
	assert.Contains(t, firstMatch(t, ObjC, "- (void)viewDidLoad {"), "viewDidLoad")
	assert.Contains(t, firstMatch(t, ObjC, "@interface AppDelegate : NSObject"), "AppDelegate")
}

func TestUnknownLanguageFallsBack(t *testing.T) {
	assert.Contains(t, firstMatch(t, Language("cobol"), "function doWork() {"), "doWork")
}
