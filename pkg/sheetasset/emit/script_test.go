package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sheetasset/pkg/sheetasset/models"
)

func TestBuildScript(t *testing.T) {
	schema := models.Schema{Fields: []models.Field{
		{Name: "ID", Type: models.TypeString},
		{Name: "Count", Type: models.TypeInt},
		{Name: "Speed", Type: models.TypeFloat},
		{Name: "Alive", Type: models.TypeBool},
		{Name: "Pos", Type: models.TypeVector3},
		{Name: "", Type: models.TypeInt},
	}}

	got := BuildScript(schema, "Enemy")

	want := `using System;
using System.Collections.Generic;
using UnityEngine;

public class EnemyTable : ScriptableObject
{
    public List<EnemyRecord> items;
}

[Serializable]
public class EnemyRecord
{
    public string ID;
    public int Count;
    public float Speed;
    public bool Alive;
    public Vector3 Pos;
}
`
	assert.Equal(t, want, got)
}

func TestScriptFileName(t *testing.T) {
	assert.Equal(t, "EnemyTable.cs", ScriptFileName("Enemy"))
}

func TestDeclForUnknownTagFallsBackToString(t *testing.T) {
	assert.Equal(t, "string", declFor(models.TypeTag("mystery")))
}
