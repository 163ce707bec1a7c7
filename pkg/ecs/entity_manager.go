// Package ecs 提供实体集合的管理
//
// Group 按加入顺序保存同一类实体，删除采用"先标记、后清理"的方式，
// 使系统可以在遍历过程中安全地销毁实体。
package ecs

// EntityID 是实体的唯一标识符
type EntityID uint64

// Group 管理同一类实体的有序集合
type Group[T any] struct {
	nextID uint64
	// 按加入顺序排列的实体ID
	order []EntityID
	// 实体ID -> 实体实例
	entities map[EntityID]T
	// 待删除的实体ID集合
	entitiesToDestroy map[EntityID]struct{}
}

// NewGroup 创建一个新的实体集合
func NewGroup[T any]() *Group[T] {
	return &Group[T]{
		nextID:            1, // ID从1开始,0保留为无效ID
		order:             make([]EntityID, 0),
		entities:          make(map[EntityID]T),
		entitiesToDestroy: make(map[EntityID]struct{}),
	}
}

// Add 加入实体并返回唯一ID
func (g *Group[T]) Add(entity T) EntityID {
	id := EntityID(g.nextID)
	g.nextID++
	g.order = append(g.order, id)
	g.entities[id] = entity
	return id
}

// Get 获取实体，已标记删除的实体视为不存在
func (g *Group[T]) Get(id EntityID) (T, bool) {
	if _, marked := g.entitiesToDestroy[id]; marked {
		var zero T
		return zero, false
	}
	entity, found := g.entities[id]
	return entity, found
}

// DestroyEntity 标记实体待删除(不立即删除)
func (g *Group[T]) DestroyEntity(id EntityID) {
	if _, exists := g.entities[id]; exists {
		g.entitiesToDestroy[id] = struct{}{}
	}
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (g *Group[T]) RemoveMarkedEntities() {
	if len(g.entitiesToDestroy) == 0 {
		return
	}
	kept := g.order[:0]
	for _, id := range g.order {
		if _, marked := g.entitiesToDestroy[id]; marked {
			delete(g.entities, id)
			continue
		}
		kept = append(kept, id)
	}
	g.order = kept
	clear(g.entitiesToDestroy)
}

// Clear 立即删除所有实体
func (g *Group[T]) Clear() {
	g.order = g.order[:0]
	clear(g.entities)
	clear(g.entitiesToDestroy)
}

// Len 返回存活（未标记删除）的实体数量
func (g *Group[T]) Len() int {
	return len(g.order) - len(g.entitiesToDestroy)
}

// IDs 按加入顺序返回存活实体的ID快照
func (g *Group[T]) IDs() []EntityID {
	result := make([]EntityID, 0, g.Len())
	for _, id := range g.order {
		if _, marked := g.entitiesToDestroy[id]; !marked {
			result = append(result, id)
		}
	}
	return result
}

// Each 按加入顺序遍历存活实体
// 遍历期间可以调用 DestroyEntity，被标记的实体会在后续迭代中跳过
func (g *Group[T]) Each(fn func(id EntityID, entity T)) {
	for _, id := range g.IDs() {
		if entity, ok := g.Get(id); ok {
			fn(id, entity)
		}
	}
}
