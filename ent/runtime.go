// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/precis/ent/analysisevent"
	"github.com/abhisek/precis/ent/llmrequestevent"
	"github.com/abhisek/precis/ent/schema"
	"github.com/abhisek/precis/ent/surveyresponse"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analysiseventMixin := schema.AnalysisEvent{}.Mixin()
	analysiseventMixinFields0 := analysiseventMixin[0].Fields()
	_ = analysiseventMixinFields0
	analysiseventFields := schema.AnalysisEvent{}.Fields()
	_ = analysiseventFields
	// analysiseventDescTimestamp is the schema descriptor for timestamp field.
	analysiseventDescTimestamp := analysiseventMixinFields0[1].Descriptor()
	// analysisevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	analysisevent.DefaultTimestamp = analysiseventDescTimestamp.Default.(func() time.Time)
	// analysiseventDescTrack is the schema descriptor for track field.
	analysiseventDescTrack := analysiseventFields[1].Descriptor()
	// analysisevent.DefaultTrack holds the default value on creation for the track field.
	analysisevent.DefaultTrack = analysiseventDescTrack.Default.(string)
	// analysiseventDescSourceType is the schema descriptor for source_type field.
	analysiseventDescSourceType := analysiseventFields[2].Descriptor()
	// analysisevent.DefaultSourceType holds the default value on creation for the source_type field.
	analysisevent.DefaultSourceType = analysiseventDescSourceType.Default.(string)
	// analysiseventDescPassageWords is the schema descriptor for passage_words field.
	analysiseventDescPassageWords := analysiseventFields[3].Descriptor()
	// analysisevent.DefaultPassageWords holds the default value on creation for the passage_words field.
	analysisevent.DefaultPassageWords = analysiseventDescPassageWords.Default.(int)
	// analysiseventDescSummaryWords is the schema descriptor for summary_words field.
	analysiseventDescSummaryWords := analysiseventFields[4].Descriptor()
	// analysisevent.DefaultSummaryWords holds the default value on creation for the summary_words field.
	analysisevent.DefaultSummaryWords = analysiseventDescSummaryWords.Default.(int)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	surveyresponseMixin := schema.SurveyResponse{}.Mixin()
	surveyresponseMixinFields0 := surveyresponseMixin[0].Fields()
	_ = surveyresponseMixinFields0
	surveyresponseFields := schema.SurveyResponse{}.Fields()
	_ = surveyresponseFields
	// surveyresponseDescTimestamp is the schema descriptor for timestamp field.
	surveyresponseDescTimestamp := surveyresponseMixinFields0[1].Descriptor()
	// surveyresponse.DefaultTimestamp holds the default value on creation for the timestamp field.
	surveyresponse.DefaultTimestamp = surveyresponseDescTimestamp.Default.(func() time.Time)
}
