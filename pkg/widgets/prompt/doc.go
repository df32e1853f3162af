// Package prompt fills forms through a sequence of line prompts.
//
// Each Field asks its question through a PromptDriver, which is backed by
// survey on a real terminal and by scripted stubs in tests. Fill walks a
// form's rows in visitation order and Run fills and resolves, offering a
// retry when an assignment fails.
package prompt
