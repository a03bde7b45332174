// Copyright 2026 Northern.tech AS
//
//	Licensed under the Apache License, Version 2.0 (the "License");
//	you may not use this file except in compliance with the License.
//	You may obtain a copy of the License at
//
//	    http://www.apache.org/licenses/LICENSE-2.0
//
//	Unless required by applicable law or agreed to in writing, software
//	distributed under the License is distributed on an "AS IS" BASIS,
//	WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//	See the License for the specific language governing permissions and
//	limitations under the License.

package main

import (
	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/pkg/errors"

	. "github.com/coffeeshop/drinks/config"
	"github.com/coffeeshop/drinks/store/mongo"
)

func dataStoreMongoConfigFromAppConfig(c config.Reader) mongo.DataStoreMongoConfig {
	return mongo.DataStoreMongoConfig{
		ConnectionString: c.GetString(SettingDb),

		SSL:           c.GetBool(SettingDbSSL),
		SSLSkipVerify: c.GetBool(SettingDbSSLSkipVerify),

		Username: c.GetString(SettingDbUsername),
		Password: c.GetString(SettingDbPassword),
	}
}

// connectDataStore opens the drinks database described by c; migrations
// are applied by Migrate only if automigrate is set.
func connectDataStore(c config.Reader, automigrate bool) (*mongo.DataStoreMongo, error) {
	db, err := mongo.GetDataStoreMongo(dataStoreMongoConfigFromAppConfig(c))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to db")
	}
	if automigrate {
		db = db.WithAutomigrate()
	}
	return db, nil
}
