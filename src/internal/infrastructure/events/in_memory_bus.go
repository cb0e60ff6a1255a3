package events

import (
	"sync"

	"github.com/fairwaylab/fairway_crm/src/internal/domain/shared"
)

// ===========================
// InMemoryEventBus
// ===========================

// InMemoryEventBus 進程內事件匯流排
//
// 設計原則：
// - 實作 shared.EventPublisher / shared.EventSubscriber 接口
// - 同步分發：Publish 依序調用訂閱者，返回第一個錯誤
// - 下游協作者（推播通知、社交動態、憑證清理）以訂閱方式接入，
//   不直接讀取核心內部狀態
type InMemoryEventBus struct {
	mu       sync.RWMutex
	handlers map[string][]shared.EventHandler
}

// NewInMemoryEventBus 創建進程內事件匯流排
func NewInMemoryEventBus() *InMemoryEventBus {
	return &InMemoryEventBus{
		handlers: make(map[string][]shared.EventHandler),
	}
}

// Subscribe 訂閱指定類型的事件
func (b *InMemoryEventBus) Subscribe(eventType string, handler shared.EventHandler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
	return nil
}

// Publish 發布單一事件
//
// 同步分發給所有訂閱者；任一訂閱者失敗即返回該錯誤
// （事件發布在事務提交之後，失敗不影響已提交的業務資料）
func (b *InMemoryEventBus) Publish(event shared.DomainEvent) error {
	b.mu.RLock()
	handlers := b.handlers[event.EventType()]
	b.mu.RUnlock()

	for _, handler := range handlers {
		if err := handler.Handle(event); err != nil {
			return err
		}
	}
	return nil
}

// PublishBatch 依序發布多個事件
func (b *InMemoryEventBus) PublishBatch(events []shared.DomainEvent) error {
	for _, event := range events {
		if err := b.Publish(event); err != nil {
			return err
		}
	}
	return nil
}
