package orchestrator

import (
	"context"
	"fmt"

	"calendar-booking-agent/internal/agent"
	"calendar-booking-agent/internal/model"
	"calendar-booking-agent/internal/session"
	"calendar-booking-agent/pkg/gemini"
)

// ProcessMessage runs the ReAct loop for one chat turn: Reason → Act → Observe.
// Conversation history is loaded from and persisted to the session store
// keyed by the scope's session ID.
func (o *Orchestrator) ProcessMessage(ctx context.Context, sc model.Scope, message string) (Result, error) {
	sess, ok := o.sessions.Get(sc.SessionID)
	if !ok {
		sess = &session.Session{
			ID:         sc.SessionID,
			CalendarID: sc.CalendarID,
			CreatedAt:  o.now(),
		}
	}
	// The client may point an existing session at another calendar.
	sess.CalendarID = sc.CalendarID

	sess.Append(gemini.Content{Role: "user", Parts: []gemini.Part{{Text: message}}})

	systemPrompt := fmt.Sprintf(SystemPromptTemplate, o.timezone, buildTimeContext(o.timezone, o.now()))

	var lastOutcome *agent.Outcome
	for step := 0; step < MaxAgentSteps; step++ {
		o.l.Infof(ctx, LogMsgAgentStep, step+1, MaxAgentSteps)

		// 1. Reason: ask the model what to do next.
		resp, err := o.llm.GenerateContent(ctx, &gemini.Request{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: systemPrompt}}},
			Messages:          sess.History,
			Tools:             agent.Definitions(),
			Temperature:       0.2,
		})
		if err != nil {
			return Result{}, fmt.Errorf(ErrMsgLLMError+": %w", step, err)
		}
		if len(resp.Content.Parts) == 0 {
			return Result{}, fmt.Errorf(ErrMsgEmptyLLMResponse)
		}

		calls := resp.FunctionCalls()

		// 2. No operation requested means the model has its final answer.
		if len(calls) == 0 {
			o.l.Infof(ctx, LogMsgAgentFinished, step+1)
			sess.Append(resp.Content)
			o.persist(sess)
			return o.finalize(resp.Text(), lastOutcome), nil
		}

		// 3. Act: execute every requested operation.
		sess.Append(resp.Content)
		for _, call := range calls {
			o.l.Infof(ctx, LogMsgAgentCallingOp, call.Name, call.Args)

			var response string
			req, err := agent.DecodeRequest(call.Name, call.Args)
			if err != nil {
				o.l.Warnf(ctx, LogMsgOpDecodeError, call.Name, err)
				response = fmt.Sprintf("Error running operation %s: %v", call.Name, err)
				lastOutcome = nil
			} else {
				outcome := o.dispatcher.Execute(ctx, sc, req)
				response = outcome.Response
				lastOutcome = &outcome
			}

			// 4. Observe: hand the result back to the model.
			sess.Append(gemini.Content{
				Role: "function",
				Parts: []gemini.Part{{
					FunctionResponse: &gemini.FunctionResponse{
						Name:     call.Name,
						Response: response,
					},
				}},
			})
		}
	}

	o.l.Warnf(ctx, LogMsgAgentMaxSteps, MaxAgentSteps)
	o.persist(sess)
	return o.finalize(MsgMaxStepsExceeded, lastOutcome), nil
}

// finalize builds the turn result. A booking confirmation from the last
// executed operation wins over the model's own closing text.
func (o *Orchestrator) finalize(reply string, lastOutcome *agent.Outcome) Result {
	result := Result{Reply: reply}
	if lastOutcome != nil && lastOutcome.BookingMade {
		result.BookingMade = true
		result.BookingDetails = lastOutcome.Booking
		if lastOutcome.Message != "" {
			result.Reply = lastOutcome.Message
		}
	}
	return result
}

func (o *Orchestrator) persist(sess *session.Session) {
	if len(sess.History) > MaxSessionHistory {
		sess.History = sess.History[len(sess.History)-MaxSessionHistory:]
	}
	o.sessions.Put(sess)
}
