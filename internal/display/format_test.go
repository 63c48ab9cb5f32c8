package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/backmassage/splitmux/internal/metadata"
	"github.com/backmassage/splitmux/internal/planner"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		name  string
		bytes int64
		want  string
	}{
		{"zero", 0, "0 B"},
		{"small bytes", 512, "512 B"},
		{"exactly 1 KiB", 1024, "1.0 KiB"},
		{"1.5 KiB", 1536, "1.5 KiB"},
		{"1 MiB", 1024 * 1024, "1.0 MiB"},
		{"1 GiB", 1024 * 1024 * 1024, "1.0 GiB"},
		{"typical chapter 70 MiB", 73400320, "70.0 MiB"},
		{"4.7 GiB", 5046586572, "4.7 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBytes(tt.bytes))
		})
	}
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "<1s", FormatElapsed(300*time.Millisecond))
	assert.Equal(t, "1m5s", FormatElapsed(65*time.Second+200*time.Millisecond))
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0.000000", "0:00:00.000"},
		{"61.234000", "0:01:01.234"},
		{"3600.500000", "1:00:00.500"},
		{"garbage", "garbage"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTimestamp(tt.in), "FormatTimestamp(%q)", tt.in)
	}
}

func TestRenderPlan(t *testing.T) {
	plan := &planner.Plan{Units: []planner.WorkUnit{
		{Index: 1, Name: "01 - Intro.m4b", Tags: metadata.Tags{Track: "1/12", Album: "Book"}, Trim: true, Start: "0.000000", End: "61.234000"},
		{Index: 2, Name: "05 - Middle.m4b", Tags: metadata.Tags{Track: "5/12", Album: "Book"}, Trim: true, Start: "61.234000", End: "3600.500000"},
	}}

	var buf bytes.Buffer
	PrintPlan(&buf, plan)
	out := buf.String()

	for _, want := range []string{"OUTPUT", "START", "01 - Intro.m4b", "5/12", "1:00:00.500"} {
		assert.Contains(t, out, want)
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRenderPlan_Episodes(t *testing.T) {
	plan := &planner.Plan{Units: []planner.WorkUnit{
		{Index: 1, Name: "Show S01E01 Pilot.mkv", Tags: metadata.Tags{Track: "1/8", Album: "Season 1"}},
	}}
	out := RenderPlan(plan)
	assert.Contains(t, out, "Season 1")
	assert.NotContains(t, out, "START")
}
