// pkg/cobrax/topics/topics_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: In-memory fs.FS (testing/fstest), cobra
// PURPOSE: Verify topic discovery, lookup and the help command

package topics_test

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/hedgehog-cloud/hublfix/pkg/cobrax/topics"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func topicFS() fstest.MapFS {
	return fstest.MapFS{
		"help/option-dry-run.txt":   {Data: []byte("Dry run help")},
		"help/option-verbose.txt":   {Data: []byte("Verbose help")},
		"help/annotations.md":       {Data: []byte("# Annotations\n\nBlock comments")},
		"help/config.txxt":          {Data: []byte("Configuration Guide")},
		"help/ignore.json":          {Data: []byte("{}")},
		"help/advanced/markers.txt": {Data: []byte("Marker help")},
	}
}

func TestScan_Extensions(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := topics.New(topicFS(), "help")
		require.NoError(t, tm.Scan())

		assert.Equal(t, []string{"annotations", "markers", "option-dry-run", "option-verbose"}, tm.ListTopics())
		topic, ok := tm.GetTopic("annotations")
		require.True(t, ok)
		assert.Equal(t, "# Annotations\n\nBlock comments", topic.Content)
		assert.Equal(t, "help/annotations.md", topic.FilePath)
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := topics.NewWithOptions(topicFS(), "help", topics.Options{
			Extensions: []string{".txxt"},
		})
		require.NoError(t, tm.Scan())
		assert.Equal(t, []string{"config"}, tm.ListTopics())
	})

	t.Run("missing root", func(t *testing.T) {
		tm := topics.New(topicFS(), "nope")
		require.NoError(t, tm.Scan())
		assert.Empty(t, tm.ListTopics())
	})
}

func TestGetTopic(t *testing.T) {
	tm := topics.New(topicFS(), "help")
	require.NoError(t, tm.Scan())

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"annotations", "annotations", true},
		{"option-dry-run", "option-dry-run", true},
		{"dry-run", "option-dry-run", true},
		{"--dry-run", "option-dry-run", true},
		{"--verbose", "option-verbose", true},
		{"-v", "", false},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			assert.Equal(t, tt.exists, exists)
			if exists {
				assert.Equal(t, tt.expected, topic.Name)
			}
		})
	}
}

func TestTopic_Title(t *testing.T) {
	tests := []struct {
		name     string
		topic    topics.Topic
		expected string
	}{
		{"first heading", topics.Topic{FilePath: "a.md", Content: "intro\n\n## Second *level*\n\n# Later"}, "Second level"},
		{"no heading", topics.Topic{FilePath: "a.md", Content: "just text"}, ""},
		{"not markdown", topics.Topic{FilePath: "a.txt", Content: "# Looks like one"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.topic.Title())
		})
	}
}

func TestWriteList(t *testing.T) {
	tm := topics.New(topicFS(), "help")
	require.NoError(t, tm.Scan())

	var buf bytes.Buffer
	tm.WriteList(&buf, "hublfix")
	out := buf.String()

	assert.Contains(t, out, "General topics:\n  annotations          Annotations\n  markers\n")
	assert.Contains(t, out, "Option topics:\n  --dry-run\n  --verbose\n")
	assert.Contains(t, out, "Use 'hublfix help <topic>'")

	empty := topics.New(fstest.MapFS{}, "help")
	require.NoError(t, empty.Scan())
	buf.Reset()
	empty.WriteList(&buf, "hublfix")
	assert.Equal(t, "No help topics available.\n", buf.String())
}

func TestInitialize_HelpCommand(t *testing.T) {
	rootCmd := &cobra.Command{Use: "testapp", Short: "Test application"}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "scan",
		Short: "Report blocks",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	_, err := topics.Initialize(rootCmd, topicFS(), "help")
	require.NoError(t, err)

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	require.NoError(t, err)
	assert.Equal(t, "help [command or topic]", helpCmd.Use)

	run := func(args ...string) string {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetArgs(args)
		require.NoError(t, rootCmd.Execute())
		return out.String()
	}

	assert.Equal(t, "Dry run help", run("help", "dry-run"))
	assert.Contains(t, run("help", "topics"), "Available help topics:")
	assert.Contains(t, run("help", "scan"), "Report blocks")
}

func TestRenderers(t *testing.T) {
	plain := topics.PlainRenderer{}
	assert.Equal(t, "# Title", plain.Render("# Title", ".md"))

	md := topics.NewMarkdownRenderer(nil)
	assert.Equal(t, "plain text", md.Render("plain text", ".txt"), "only markdown is rendered")
}

func TestMarkdownRenderer_UnstyledOutsideTerminal(t *testing.T) {
	asked := 0
	md := topics.NewMarkdownRenderer(func() bool {
		asked++
		return false
	})

	out := md.Render("# Title\n\nSome **bold** body", ".md")

	assert.Equal(t, 1, asked, "styling is decided per render")
	assert.NotContains(t, out, "\x1b[", "no ANSI escapes for non-terminal output")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
	assert.Contains(t, out, "body")
}
