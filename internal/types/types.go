// internal/types/types.go
package types

// EntityID — идентификатор сущности. Идентификаторы никогда не переиспользуются,
// поэтому удалённая сущность всегда разрешается в "не найдено".
type EntityID uint64
