package service

import (
	"context"
	"fmt"
	"time"

	"legal-research-be/internal/constant"
	"legal-research-be/internal/dto"
	"legal-research-be/internal/entity"
	"legal-research-be/internal/pkg/logger"
	"legal-research-be/internal/repository/specification"
	"legal-research-be/internal/repository/unitofwork"
	"legal-research-be/pkg/research/pipeline"
	"legal-research-be/pkg/research/session"
	"legal-research-be/pkg/store"

	"github.com/google/uuid"
)

// IChatService defines the research chat service interface
type IChatService interface {
	CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error)
	GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error)
	GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error)
	SendChat(ctx context.Context, userId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error)
	DeleteSession(ctx context.Context, userId uuid.UUID, request *dto.DeleteSessionRequest) error
}

type chatService struct {
	uowFactory unitofwork.RepositoryFactory
	pipeline   *pipeline.Pipeline
	sessions   *session.Manager
	log        logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	turnPipeline *pipeline.Pipeline,
	sessions *session.Manager,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory: uowFactory,
		pipeline:   turnPipeline,
		sessions:   sessions,
		log:        log,
	}
}

// CreateSession creates a new research session with a greeting message.
func (cs *chatService) CreateSession(ctx context.Context, userId uuid.UUID) (*dto.CreateSessionResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	chatSession := entity.ChatSession{
		Id:        uuid.New(),
		UserId:    userId,
		Title:     constant.ChatSessionDefaultTitle,
		CreatedAt: now,
	}

	greeting := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: chatSession.Id,
		Role:          constant.ChatMessageRoleModel,
		Chat:          constant.ChatGreetingMessage,
		CreatedAt:     now,
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Create(ctx, &chatSession); err != nil {
		return nil, err
	}
	if err := uow.ChatMessageRepository().Create(ctx, &greeting); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	return &dto.CreateSessionResponse{Id: chatSession.Id}, nil
}

// GetAllSessions retrieves all research sessions for a user.
func (cs *chatService) GetAllSessions(ctx context.Context, userId uuid.UUID) ([]*dto.GetAllSessionsResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	response := make([]*dto.GetAllSessionsResponse, 0, len(chatSessions))
	for _, s := range chatSessions {
		response = append(response, &dto.GetAllSessionsResponse{
			Id:        s.Id,
			Title:     s.Title,
			CreatedAt: s.CreatedAt,
			UpdatedAt: s.UpdatedAt,
		})
	}

	return response, nil
}

// GetChatHistory retrieves the message history for a session.
func (cs *chatService) GetChatHistory(ctx context.Context, userId uuid.UUID, sessionId uuid.UUID) ([]*dto.GetChatHistoryResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if _, err := cs.verifySession(ctx, uow, userId, sessionId); err != nil {
		return nil, err
	}

	chatMessages, err := uow.ChatMessageRepository().FindAll(ctx,
		specification.ByChatSessionID{ChatSessionID: sessionId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	resp := make([]*dto.GetChatHistoryResponse, 0, len(chatMessages))
	for _, msg := range chatMessages {
		resp = append(resp, &dto.GetChatHistoryResponse{
			Id:           msg.Id,
			Role:         msg.Role,
			Chat:         msg.Chat,
			ReturnBranch: msg.ReturnBranch,
			Candidates:   candidatesToDTO(msg.Candidates),
			CreatedAt:    msg.CreatedAt,
		})
	}

	return resp, nil
}

// SendChat runs one user turn: persist the user message, run the
// disambiguation pipeline, persist and return the reply.
func (cs *chatService) SendChat(ctx context.Context, userId uuid.UUID, request *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	chatSession, err := cs.verifySession(ctx, uow, userId, request.ChatSessionId)
	if err != nil {
		return nil, err
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	now := time.Now()
	userMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: request.ChatSessionId,
		Role:          constant.ChatMessageRoleUser,
		Chat:          request.Chat,
		CreatedAt:     now,
	}
	if err := uow.ChatMessageRepository().Create(ctx, &userMessage); err != nil {
		return nil, err
	}

	result, err := cs.pipeline.HandleTurn(ctx, userId.String(), request.ChatSessionId.String(), request.Chat)
	if err != nil {
		return nil, err
	}

	modelMessage := entity.ChatMessage{
		Id:            uuid.New(),
		ChatSessionId: request.ChatSessionId,
		Role:          constant.ChatMessageRoleModel,
		Chat:          result.Reply,
		ReturnBranch:  result.ReturnBranch,
		Candidates:    result.Candidates,
		CreatedAt:     now.Add(1 * time.Second),
	}
	if err := uow.ChatMessageRepository().Create(ctx, &modelMessage); err != nil {
		return nil, err
	}

	// First real query names the session.
	if chatSession.Title == constant.ChatSessionDefaultTitle {
		chatSession.Title = sessionTitle(request.Chat)
		chatSession.UpdatedAt = &now
		if err := uow.ChatSessionRepository().Update(ctx, chatSession); err != nil {
			return nil, err
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	response := &dto.SendChatResponse{
		ChatSessionId:    chatSession.Id,
		ChatSessionTitle: chatSession.Title,
		Sent: &dto.SendChatResponseChat{
			Id:        userMessage.Id,
			Chat:      userMessage.Chat,
			Role:      userMessage.Role,
			CreatedAt: userMessage.CreatedAt,
		},
		Reply: &dto.SendChatResponseChat{
			Id:        modelMessage.Id,
			Chat:      modelMessage.Chat,
			Role:      modelMessage.Role,
			CreatedAt: modelMessage.CreatedAt,
		},
		ReturnBranch: result.ReturnBranch,
	}

	if result.Kind == pipeline.TurnDisambiguation {
		response.Disambiguation = &dto.DisambiguationDTO{
			Candidates: candidatesToDTO(result.Candidates),
		}
	}
	if result.Selected != nil {
		selected := candidateToDTO(0, *result.Selected)
		response.SelectedCase = &selected
	}

	return response, nil
}

// DeleteSession removes a session, its messages, and any pending
// disambiguation state.
func (cs *chatService) DeleteSession(ctx context.Context, userId uuid.UUID, request *dto.DeleteSessionRequest) error {
	uow := cs.uowFactory.NewUnitOfWork(ctx)

	if _, err := cs.verifySession(ctx, uow, userId, request.ChatSessionId); err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.ChatSessionRepository().Delete(ctx, request.ChatSessionId); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	cs.sessions.ClearPending(ctx, request.ChatSessionId.String())
	return nil
}

func (cs *chatService) verifySession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.ChatSession, error) {
	sess, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session not found or access denied")
	}
	return sess, nil
}

func sessionTitle(query string) string {
	const maxTitleLen = 60
	if len(query) <= maxTitleLen {
		return query
	}
	return query[:maxTitleLen-3] + "..."
}

func candidatesToDTO(candidates []store.Candidate) []dto.CandidateDTO {
	if len(candidates) == 0 {
		return nil
	}
	out := make([]dto.CandidateDTO, 0, len(candidates))
	for i, c := range candidates {
		out = append(out, candidateToDTO(i+1, c))
	}
	return out
}

func candidateToDTO(index int, c store.Candidate) dto.CandidateDTO {
	return dto.CandidateDTO{
		Index:    index,
		Id:       c.ID,
		Label:    c.Label,
		DocketId: c.DocketID,
	}
}
