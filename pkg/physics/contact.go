package physics

import (
	"github.com/jakecoffman/cp"

	"github.com/gonewx/prison/pkg/ecs"
)

// Contact 接触的一方
type Contact struct {
	// Entity 刚体的拥有者
	Entity ecs.EntityID
	// Category 该形状的分类
	Category Category
}

// ContactHandler 处理某一对分类之间的接触开始事件
//
// 两个参数的顺序不可靠，实现用 Order 按分类位区分双方。
type ContactHandler interface {
	BeginContact(a, b Contact)
}

// ContactHandlerFunc 函数形式的 ContactHandler
type ContactHandlerFunc func(a, b Contact)

// BeginContact 调用 f(a, b)
func (f ContactHandlerFunc) BeginContact(a, b Contact) {
	f(a, b)
}

// Order 返回 (属于 first 分类的一方, 另一方)
func Order(first Category, a, b Contact) (Contact, Contact) {
	if a.Category.Has(first) {
		return a, b
	}
	return b, a
}

// RegisterContactHandler 注册 first 与 second 两个分类之间的接触处理器
// 同一对分类重复注册时替换旧处理器
func (w *World) RegisterContactHandler(first, second Category, handler ContactHandler) {
	w.handlers[first|second] = handler
}

// HandlerFor 返回两个分类之间注册的处理器
func (w *World) HandlerFor(first, second Category) (ContactHandler, bool) {
	h, ok := w.handlers[first|second]
	return h, ok
}

// Dispatch 把一次接触分发给对应的处理器，返回是否找到处理器
func (w *World) Dispatch(a, b Contact) bool {
	handler, ok := w.handlers[a.Category|b.Category]
	if !ok {
		return false
	}
	handler.BeginContact(a, b)
	return true
}

func (w *World) begin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	shapeA, shapeB := arb.Shapes()
	w.Dispatch(contactOf(shapeA), contactOf(shapeB))
	return true
}

func contactOf(shape *cp.Shape) Contact {
	contact := Contact{}
	if category, ok := shape.UserData.(Category); ok {
		contact.Category = category
	}
	if owner, ok := shape.Body().UserData.(ecs.EntityID); ok {
		contact.Entity = owner
	}
	return contact
}
