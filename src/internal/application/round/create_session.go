package round

import (
	"github.com/fairwaylab/fairway_crm/src/internal/domain/round"
	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
)

// ===========================
// UC-001: CreateSession Use Case
// ===========================

// CreateSessionCommand 建立球局指令（Input DTO）
//
// 設計原則：
// - 只包含外部輸入數據（不包含內部邏輯）
// - 使用原始類型（string），由 Use Case 轉換為 Value Object
// - CourseID / Format 為可選欄位（空字串 = 未指定）
type CreateSessionCommand struct {
	Name      string // 球局名稱
	CreatorID string // 建立者 User ID (UUID)
	CourseID  string // 球場 ID（可選）
	Format    string // 比賽格式（可選，預設 stroke）
}

// CreateSessionResult 建立球局結果（Output DTO）
type CreateSessionResult struct {
	SessionID string // 球局 ID (UUID)
	Status    string // 球局狀態（必為 waiting）
	Format    string // 實際採用的比賽格式
}

// CreateSessionUseCase 建立球局 Use Case 接口
//
// 業務規則：
// 1. 新球局以 waiting 狀態建立
// 2. Format 未指定時預設為 stroke
// 3. 球員加入是獨立操作（AddPlayer），建立時不附帶球員
type CreateSessionUseCase interface {
	Execute(cmd CreateSessionCommand) (*CreateSessionResult, error)
}

// ===========================
// CreateSessionUseCaseImpl
// ===========================

// CreateSessionUseCaseImpl 建立球局 Use Case 實作
type CreateSessionUseCaseImpl struct {
	sessionRepo round.SessionRepository
	txManager   shared.TransactionManager
}

// NewCreateSessionUseCase 創建 CreateSessionUseCase 實例
func NewCreateSessionUseCase(
	sessionRepo round.SessionRepository,
	txManager shared.TransactionManager,
) CreateSessionUseCase {
	return &CreateSessionUseCaseImpl{
		sessionRepo: sessionRepo,
		txManager:   txManager,
	}
}

// Execute 執行建立球局 Use Case
//
// 業務流程：
// 1. 驗證輸入並轉換為 Value Object
// 2. 創建 Session 聚合（waiting 狀態）
// 3. 在事務中保存
//
// 錯誤處理：
// - 名稱為空 → round.ErrInvalidSessionName
// - Format 無效 → round.ErrInvalidGameFormat
// - CreatorID / CourseID 格式錯誤 → 對應 ID 錯誤
func (uc *CreateSessionUseCaseImpl) Execute(cmd CreateSessionCommand) (*CreateSessionResult, error) {
	// Step 1: 驗證輸入並轉換為 Value Object
	creatorID, err := round.UserIDFromString(cmd.CreatorID)
	if err != nil {
		return nil, err
	}

	var courseID *round.CourseID
	if cmd.CourseID != "" {
		id, err := round.CourseIDFromString(cmd.CourseID)
		if err != nil {
			return nil, err
		}
		courseID = &id
	}

	format, err := round.NewGameFormat(cmd.Format)
	if err != nil {
		return nil, err
	}

	// Step 2: 創建 Session 聚合（業務邏輯在 Domain Layer）
	session, err := round.NewSession(cmd.Name, creatorID, courseID, format)
	if err != nil {
		return nil, err
	}

	// Step 3: 在事務中保存
	err = uc.txManager.InTransaction(func(ctx shared.TransactionContext) error {
		return uc.sessionRepo.Save(ctx, session)
	})
	if err != nil {
		return nil, err
	}

	return &CreateSessionResult{
		SessionID: session.SessionID().String(),
		Status:    string(session.Status()),
		Format:    string(session.Format()),
	}, nil
}
