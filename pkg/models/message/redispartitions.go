package message

import (
	"fmt"

	"github.com/zeromicro/go-zero/core/hash"
)

const topicNumber = 5

type RedisPartition int

func (r RedisPartition) ListKey() string {
	return fmt.Sprintf("voronoi:events:%d", r)
}

func (r RedisPartition) OwnerKey() string {
	return fmt.Sprintf("voronoi:events:%d:owner", r)
}

func (r RedisPartition) LockName() string {
	return fmt.Sprintf("voronoi:events:%d:lock", r)
}

var RedisPartitions []RedisPartition

func init() {
	for i := range topicNumber {
		RedisPartitions = append(RedisPartitions, RedisPartition(i+1))
	}
}

// PartitionOf pins every game to one partition so its events stay in order.
func PartitionOf(uid GameUid) RedisPartition {
	return RedisPartitions[hash.Hash([]byte(uid))%uint64(len(RedisPartitions))]
}
