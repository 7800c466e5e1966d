// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	_ "embed"
	"time"

	"github.com/olivere/elastic/v7"
	"golang.org/x/sync/errgroup"
)

var (
	//go:embed skill_index.json
	skillIndex string
	//go:embed role_index.json
	roleIndex string
	//go:embed job_index.json
	jobIndex string

	//go:embed skill_test_index.json
	testSkillIndex string
	//go:embed role_test_index.json
	testRoleIndex string
	//go:embed job_test_index.json
	testJobIndex string
)

// InitES 创建索引
func InitES(client *elastic.Client) error {
	const timeout = time.Second * 10
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	var eg errgroup.Group
	eg.Go(func() error {
		return tryCreateIndex(ctx, client, SkillIndexName, skillIndex)
	})
	eg.Go(func() error {
		return tryCreateIndex(ctx, client, RoleIndexName, roleIndex)
	})
	eg.Go(func() error {
		return tryCreateIndex(ctx, client, JobIndexName, jobIndex)
	})
	return eg.Wait()
}

// InitEsTest 创建索引测试用
func InitEsTest(client *elastic.Client) error {
	const timeout = time.Second * 10
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	var eg errgroup.Group
	eg.Go(func() error {
		return tryCreateIndex(ctx, client, SkillIndexName, testSkillIndex)
	})
	eg.Go(func() error {
		return tryCreateIndex(ctx, client, RoleIndexName, testRoleIndex)
	})
	eg.Go(func() error {
		return tryCreateIndex(ctx, client, JobIndexName, testJobIndex)
	})
	return eg.Wait()
}

func tryCreateIndex(ctx context.Context,
	client *elastic.Client,
	idxName, idxCfg string,
) error {
	// 索引可能已经建好了
	ok, err := client.IndexExists(idxName).Do(ctx)
	if err != nil {
		return err
	}
	if ok {
		return nil
	}
	_, err = client.CreateIndex(idxName).Body(idxCfg).Do(ctx)
	return err
}
