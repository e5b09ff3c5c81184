package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VinodVen/growthai/internal/model"
	"github.com/VinodVen/growthai/internal/service"
)

func TestBuildPrompt(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"birthday", "30%"},
		{"loyalty", "loyalty"},
		{"weekend", "20%"},
		{"", "20%"},
		{"anniversary", "20%"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			prompt := service.BuildPrompt(model.ParseCampaignType(tt.input), "Jane", "Cafe Luna")
			assert.Contains(t, prompt, tt.contains)
			assert.Contains(t, prompt, "Jane")
			assert.Contains(t, prompt, "Cafe Luna")
			assert.Contains(t, prompt, "80 words")
		})
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "Hi", service.Sanitize("**Hi** ###"))
	assert.Equal(t, "Happy birthday Jane!", service.Sanitize("### **Happy birthday** Jane!\n"))
	assert.Equal(t, "", service.Sanitize("*###*"))
	assert.Equal(t, "plain", service.Sanitize("plain"))
}
