package glshader

// MaxPointLights is the pointLights array length in the fragment shader.
const MaxPointLights = 4

const vertexSource = `#version 460 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;
uniform vec2 UVscale;

out vec3 fragPos;
out vec3 fragNormal;
out vec2 fragUV;

void main() {
	fragPos = vec3(model * vec4(aPos, 1.0));
	fragNormal = mat3(transpose(inverse(model))) * aNormal;
	fragUV = aUV * UVscale;
	gl_Position = projection * view * vec4(fragPos, 1.0);
}
`

const fragmentSource = `#version 460 core
struct PointLight {
	vec3 position;
	vec3 ambient;
	vec3 diffuse;
	vec3 specular;
	bool bActive;
};

struct Material {
	vec3 diffuseColor;
	vec3 specularColor;
	float shininess;
};

#define MAX_POINT_LIGHTS 4

uniform PointLight pointLights[MAX_POINT_LIGHTS];
uniform Material material;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec3 viewPosition;

in vec3 fragPos;
in vec3 fragNormal;
in vec2 fragUV;

out vec4 outColor;

vec3 shade(PointLight light, vec3 base, vec3 normal, vec3 viewDir) {
	vec3 lightDir = normalize(light.position - fragPos);
	float diff = max(dot(normal, lightDir), 0.0);
	vec3 reflectDir = reflect(-lightDir, normal);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
	vec3 ambient = light.ambient * base;
	vec3 diffuse = light.diffuse * diff * base * material.diffuseColor;
	vec3 specular = light.specular * spec * material.specularColor;
	return ambient + diffuse + specular;
}

void main() {
	vec4 base = objectColor;
	if (bUseTexture) {
		base = texture(objectTexture, fragUV);
	}
	if (!bUseLighting) {
		outColor = base;
		return;
	}
	vec3 normal = normalize(fragNormal);
	vec3 viewDir = normalize(viewPosition - fragPos);
	vec3 lit = vec3(0.0);
	for (int i = 0; i < MAX_POINT_LIGHTS; i++) {
		if (pointLights[i].bActive) {
			lit += shade(pointLights[i], base.rgb, normal, viewDir);
		}
	}
	outColor = vec4(lit, base.a);
}
`
