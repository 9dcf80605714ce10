package prompt_test

import (
	"strings"
	"testing"

	// Packages
	prompt "github.com/mutablelogic/go-popclip/pkg/prompt"
	assert "github.com/stretchr/testify/assert"
)

func Test_prompt_001(t *testing.T) {
	// A single placeholder is replaced verbatim
	assert := assert.New(t)
	tpl := prompt.Template("Fix this: {input}")
	assert.Equal("Fix this: hello wrld", prompt.Rewrite(tpl, "hello wrld"))
}

func Test_prompt_002(t *testing.T) {
	// Every occurrence is replaced
	assert := assert.New(t)
	tpl := prompt.Template("{input} / {input} / {input}")
	result := prompt.Rewrite(tpl, "x")
	assert.Equal("x / x / x", result)
	assert.Equal(0, strings.Count(result, prompt.Input))
}

func Test_prompt_003(t *testing.T) {
	// Empty or whitespace templates fall back to the default
	assert := assert.New(t)
	for _, tpl := range []prompt.Template{"", "   ", "\n\t"} {
		result := prompt.Rewrite(tpl, "some text")
		assert.True(strings.HasPrefix(result, "I will give you text content"))
		assert.True(strings.HasSuffix(result, "following text: some text"))
	}
}

func Test_prompt_004(t *testing.T) {
	// Special characters are not escaped, and substituted text is not rescanned
	assert := assert.New(t)
	tpl := prompt.Template("<{input}>")
	assert.Equal(`<$1 \n {lang} {input}>`, prompt.Translate(tpl, `$1 \n {lang} {input}`, "French"))
}

func Test_prompt_005(t *testing.T) {
	// Translate replaces both placeholders, all occurrences
	assert := assert.New(t)
	tpl := prompt.Template("Into {lang}: {input}. Again {lang}: {input}")
	assert.Equal("Into Spanish: hi. Again Spanish: hi", prompt.Translate(tpl, "hi", "Spanish"))
}

func Test_prompt_006(t *testing.T) {
	// Default translate template
	assert := assert.New(t)
	result := prompt.Translate("", "bonjour", "English")
	assert.Contains(result, "translate the text into English language")
	assert.True(strings.HasSuffix(result, "translate the following text:bonjour"))
}

func Test_prompt_007(t *testing.T) {
	// Placeholder detection
	assert := assert.New(t)
	assert.Equal([]string{"{input}", "{lang}"}, prompt.DefaultTranslate.Placeholders())
	assert.Equal([]string{"{input}"}, prompt.DefaultRewrite.Placeholders())
	assert.Nil(prompt.Template("nothing").Placeholders())
	assert.Equal([]string{"{lang}"}, prompt.Template("a {lang}").Placeholders())
}

func Test_prompt_008(t *testing.T) {
	// Build with no values leaves the template untouched
	assert := assert.New(t)
	assert.Equal("{input}", prompt.Template("{input}").Build(nil))
	assert.Equal("v", prompt.Template("{custom}").Build(map[string]string{"{custom}": "v"}))
}

func Test_prompt_009(t *testing.T) {
	// Overlapping custom keys resolve the same way every time
	assert := assert.New(t)
	template := prompt.Template("{name} {name_full}")
	values := map[string]string{"{name": "A", "{name}": "B", "{name_full}": "C"}
	expected := template.Build(values)
	for i := 0; i < 50; i++ {
		assert.Equal(expected, template.Build(values))
	}
	assert.Equal("A} A_full}", expected)
}
